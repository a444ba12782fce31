package sitegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_RebuildsOnChange(t *testing.T) {
	t.Parallel()

	s := newSite(t, map[string]string{"index.md": "# Home"}, nil)
	opts := s.options(t)
	opts.Debounce = 20 * time.Millisecond
	gen := newGenerator(t, nil, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builds := make(chan *Report, 16)
	done := make(chan error, 1)
	go func() {
		done <- gen.Watch(ctx, func(r *Report, err error) {
			if err != nil && ctx.Err() == nil {
				t.Errorf("rebuild failed: %v", err)
			}
			select {
			case builds <- r:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep touching the
	// source until a rebuild is observed.
	page := filepath.Join(s.content, "news.md")
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

wait:
	for {
		select {
		case r := <-builds:
			if r != nil && r.Succeeded() == 2 {
				break wait
			}
		case <-tick.C:
			if err := os.WriteFile(page, []byte("# News"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no rebuild observed")
		}
	}

	if _, err := os.Stat(filepath.Join(s.output, "news.html")); err != nil {
		t.Errorf("new page not generated: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}

func TestWatch_MissingContentDir(t *testing.T) {
	t.Parallel()

	s := newSite(t, nil, nil)
	gen := newGenerator(t, nil, s.options(t))
	if err := os.RemoveAll(s.content); err != nil {
		t.Fatal(err)
	}

	if err := gen.Watch(context.Background(), nil); err == nil {
		t.Error("Watch() expected error for missing content dir")
	}
}
