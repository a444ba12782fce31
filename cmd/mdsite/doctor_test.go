package main

// Notes:
// - Chrome detection depends on the host, so only its effect on status is
//   checked: without --pdf a missing browser never makes the result fail.

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

func doctorConfig(t *testing.T, pages map[string]string) *config.Config {
	t.Helper()

	root := t.TempDir()
	for rel, body := range pages {
		writeTestFile(t, filepath.Join(root, "content", rel), body)
	}
	cfg := config.DefaultConfig()
	cfg.Content.Dir = filepath.Join(root, "content")
	cfg.Static.Dir = filepath.Join(root, "static")
	cfg.Output.Dir = filepath.Join(root, "out", "site")
	return cfg
}

// ---------------------------------------------------------------------------
// TestRunDoctor - Site checks
// ---------------------------------------------------------------------------

func TestRunDoctor_ValidSite(t *testing.T) {
	t.Parallel()

	cfg := doctorConfig(t, map[string]string{"index.md": "# Home", "a/b.md": "# B"})
	r := runDoctor(cfg)

	if r.Site.Pages != 2 {
		t.Errorf("Pages = %d, want 2", r.Site.Pages)
	}
	if !r.Site.OutputWritable {
		t.Error("OutputWritable = false, want true for a missing dir under a temp dir")
	}
	if r.Site.StaticFound {
		t.Error("StaticFound = true, want false")
	}
	if r.Status == statusErrors {
		t.Errorf("Status = %s, errors: %v", r.Status, r.Errors)
	}
	if !containsSubstring(r.Warnings, "Static directory") {
		t.Errorf("expected a missing static warning, got %v", r.Warnings)
	}
}

func TestRunDoctor_MissingContent(t *testing.T) {
	t.Parallel()

	cfg := doctorConfig(t, nil)
	r := runDoctor(cfg)

	if r.Status != statusErrors {
		t.Errorf("Status = %s, want %s", r.Status, statusErrors)
	}
	if !containsSubstring(r.Errors, "content directory not found") {
		t.Errorf("expected content error, got %v", r.Errors)
	}
}

func TestRunDoctor_OutputContainsContent(t *testing.T) {
	t.Parallel()

	cfg := doctorConfig(t, map[string]string{"index.md": "# Home"})
	cfg.Output.Dir = filepath.Dir(cfg.Content.Dir)

	if r := runDoctor(cfg); !containsSubstring(r.Errors, "contains the content directory") {
		t.Errorf("expected unsafe output error, got %v", r.Errors)
	}
}

func TestRunDoctor_OutputInsideStatic(t *testing.T) {
	t.Parallel()

	cfg := doctorConfig(t, map[string]string{"index.md": "# Home"})
	cfg.Output.Dir = filepath.Join(cfg.Static.Dir, "docs")

	if r := runDoctor(cfg); !containsSubstring(r.Errors, "inside the static directory") {
		t.Errorf("expected output-inside-static error, got %v", r.Errors)
	}
}

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	r := &doctorResult{
		Status:   statusWarnings,
		Site:     siteInfo{ContentDir: "content", Pages: 3, OutputDir: "docs", OutputWritable: true},
		Env:      envInfo{OS: "linux", Arch: "amd64", CI: true},
		Warnings: []string{"Chrome/Chromium not found"},
	}

	var buf bytes.Buffer
	printDoctorResult(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"Content: content (3 pages)",
		"Output: docs",
		"Platform: linux/amd64",
		"CI: detected",
		"[WARN] Chrome/Chromium not found",
		"Status: Ready with warnings",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorResult_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&doctorResult{Status: statusReady, Site: siteInfo{Pages: 1}})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"status":"ready"`, `"pages":1`, `"chrome":`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON %s missing %s", data, key)
		}
	}
}

func TestNearestDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if got := nearestDir(filepath.Join(root, "a", "b", "c")); got != root {
		t.Errorf("nearestDir() = %q, want %q", got, root)
	}
}

func TestIsContainer_Override(t *testing.T) {
	t.Setenv("MDSITE_CONTAINER", "1")

	ok, hint := isContainer()
	if !ok || hint != "MDSITE_CONTAINER=1" {
		t.Errorf("isContainer() = %v, %q", ok, hint)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
