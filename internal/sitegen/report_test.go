package sitegen

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

func TestReport_Counts(t *testing.T) {
	t.Parallel()

	r := &Report{Pages: []PageResult{
		{Bytes: 1000},
		{Bytes: 500},
		{Bytes: 700, Err: errors.New("failed")},
	}}

	if got := r.Succeeded(); got != 2 {
		t.Errorf("Succeeded() = %d, want 2", got)
	}
	if got := r.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if got := r.Bytes(); got != 1500 {
		t.Errorf("Bytes() = %d, want 1500", got)
	}
	if got := len(r.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d, want 1", got)
	}
}

func TestReport_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			name:   "empty build",
			report: Report{},
			want:   "built 0 pages (0 B)",
		},
		{
			name:   "single page",
			report: Report{Pages: []PageResult{{Bytes: 1500}}},
			want:   "built 1 page (1.5 kB)",
		},
		{
			name: "static files and failures",
			report: Report{
				Pages:  []PageResult{{Bytes: 200}, {Bytes: 300}, {Err: errors.New("x")}},
				Static: fileutil.CopyStats{Files: 3, Bytes: 2_000_000},
			},
			want: "built 2 pages (500 B), copied 3 static files (2.0 MB), 1 failed",
		},
		{
			name:   "duration",
			report: Report{Pages: []PageResult{{Bytes: 10}}, Duration: 1234567 * time.Microsecond},
			want:   "built 1 page (10 B) in 1.235s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.report.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
