package sitegen

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageResult holds the outcome of a single page.
type PageResult struct {
	Page     Page
	Err      error
	Duration time.Duration
	Bytes    int    // Size of the written page
	Exported string // Export path, when an Exporter is set
}

// Report summarizes a build.
type Report struct {
	Pages    []PageResult
	Static   fileutil.CopyStats
	Duration time.Duration
}

// Succeeded returns the number of pages written.
func (r *Report) Succeeded() int {
	return len(r.Pages) - r.Failed()
}

// Failed returns the number of pages that failed.
func (r *Report) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err != nil {
			n++
		}
	}
	return n
}

// Bytes returns the total size of written pages.
func (r *Report) Bytes() uint64 {
	var total uint64
	for _, p := range r.Pages {
		if p.Err == nil {
			total += uint64(p.Bytes) // #nosec G115 -- page sizes are non-negative
		}
	}
	return total
}

// Errors returns the failed page results.
func (r *Report) Errors() []PageResult {
	var failed []PageResult
	for _, p := range r.Pages {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return failed
}

// Summary returns a one-line human description of the build.
func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "built %s (%s)",
		english.Plural(r.Succeeded(), "page", ""), humanize.Bytes(r.Bytes()))
	if r.Static.Files > 0 {
		fmt.Fprintf(&sb, ", copied %s (%s)",
			english.Plural(r.Static.Files, "static file", ""), humanize.Bytes(uint64(r.Static.Bytes))) // #nosec G115
	}
	if failed := r.Failed(); failed > 0 {
		fmt.Fprintf(&sb, ", %d failed", failed)
	}
	if r.Duration > 0 {
		fmt.Fprintf(&sb, " in %s", r.Duration.Round(time.Millisecond))
	}
	return sb.String()
}
