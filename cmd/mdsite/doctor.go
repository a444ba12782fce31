package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/logging"
	"github.com/alnah/go-mdsite/internal/sitegen"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

type doctorResult struct {
	Status   string     `json:"status"`
	Site     siteInfo   `json:"site"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

type siteInfo struct {
	ContentDir     string `json:"content_dir"`
	Pages          int    `json:"pages"`
	StaticDir      string `json:"static_dir,omitempty"`
	StaticFound    bool   `json:"static_found"`
	OutputDir      string `json:"output_dir"`
	OutputWritable bool   `json:"output_writable"`
}

// chromeInfo describes the browser used for --pdf.
type chromeInfo struct {
	Required bool   `json:"required"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
	Sandbox  bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd checks the setup the build command would use.
// Warnings alone still exit 0.
func runDoctorCmd(args []string, env *Environment) int {
	asJSON := false
	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		case "-h", "--help":
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig("", envCfg.ConfigPath, logging.Nop())
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	applyEnvConfig(envCfg, cfg)

	result := runDoctor(cfg)
	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(cfg *config.Config) *doctorResult {
	r := &doctorResult{
		Chrome: chromeInfo{Required: cfg.Build.PDF},
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkSite(r, cfg)
	checkChrome(r)
	checkEnvironment(r)

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

func checkSite(r *doctorResult, cfg *config.Config) {
	r.Site = siteInfo{
		ContentDir: cfg.Content.Dir,
		StaticDir:  cfg.Static.Dir,
		OutputDir:  cfg.Output.Dir,
	}

	pages, err := sitegen.Discover(cfg.Content.Dir, cfg.Output.Dir)
	r.Site.Pages = len(pages)
	if err != nil {
		r.fail("Content directory: %v", err)
	} else if len(pages) == 0 {
		r.warn("No Markdown pages under %s", cfg.Content.Dir)
	}

	if cfg.Static.Dir != "" {
		if r.Site.StaticFound = fileutil.DirExists(cfg.Static.Dir); !r.Site.StaticFound {
			r.warn("Static directory %s not found, nothing will be copied", cfg.Static.Dir)
		}
	}

	if fileutil.IsWithin(cfg.Content.Dir, cfg.Output.Dir) {
		r.fail("Output directory %s contains the content directory", cfg.Output.Dir)
	}
	if cfg.Static.Dir != "" && fileutil.IsWithin(cfg.Output.Dir, cfg.Static.Dir) {
		r.fail("Output directory %s is inside the static directory", cfg.Output.Dir)
	}
	if r.Site.OutputWritable = dirWritable(nearestDir(cfg.Output.Dir)); !r.Site.OutputWritable {
		r.fail("Output directory %s is not writable", cfg.Output.Dir)
	}
}

// nearestDir returns path or its closest existing ancestor.
func nearestDir(path string) string {
	path = filepath.Clean(path)
	for !fileutil.DirExists(path) {
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}
	return path
}

func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".mdsite-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// checkChrome looks for a browser. Without --pdf a missing one is a warning.
func checkChrome(r *doctorResult) {
	missing := func(format string, args ...any) {
		if r.Chrome.Required {
			r.fail(format, args...)
			return
		}
		r.warn(format+" (needed for --pdf only)", args...)
	}

	bin := r.Env.BrowserBin
	if bin == "" {
		var ok bool
		if bin, ok = launcher.LookPath(); !ok {
			missing("Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}
	if _, err := os.Stat(bin); err != nil {
		missing("Chrome not found at %s", bin)
		return
	}

	r.Chrome.Found = true
	r.Chrome.Path = bin
	r.Chrome.Sandbox = r.Env.NoSandbox != "1"

	out, err := exec.Command(bin, "--version").Output() // #nosec G204 -- browser path from env or rod lookup
	if err != nil {
		r.warn("Could not get Chrome version: %v", err)
		return
	}
	r.Chrome.Version = strings.TrimSpace(string(out))
}

func checkEnvironment(r *doctorResult) {
	r.Env.Container, r.Env.ContainerHint = isContainer()
	r.Env.CI = hints.InCI()

	if r.Chrome.Found && r.Chrome.Sandbox && (r.Env.Container || r.Env.CI) {
		r.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer reports whether we run in a container and which signal said so.
func isContainer() (bool, string) {
	if os.Getenv("MDSITE_CONTAINER") == "1" {
		return true, "MDSITE_CONTAINER=1"
	}
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

var statusLines = map[string]string{
	statusReady:    "Ready to build",
	statusWarnings: "Ready with warnings",
	statusErrors:   "Not ready (see errors above)",
}

func printDoctorResult(w io.Writer, r *doctorResult) {
	section := func(title string, lines ...string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintln(w, title)
		for _, l := range lines {
			fmt.Fprintln(w, "  "+l)
		}
		fmt.Fprintln(w)
	}
	tagged := func(tag string, items []string) []string {
		out := make([]string, len(items))
		for i, s := range items {
			out[i] = tag + " " + s
		}
		return out
	}

	fmt.Fprint(w, "mdsite doctor\n\n")

	site := []string{fmt.Sprintf("[OK] Content: %s (%s)", r.Site.ContentDir, english.Plural(r.Site.Pages, "page", ""))}
	if r.Site.StaticFound {
		site = append(site, "[OK] Static: "+r.Site.StaticDir)
	}
	if r.Site.OutputWritable {
		site = append(site, "[OK] Output: "+r.Site.OutputDir)
	}
	section("Site", site...)

	chrome := []string{"[--] Not found"}
	if r.Chrome.Found {
		chrome = []string{"[OK] Found at " + r.Chrome.Path}
		if r.Chrome.Version != "" {
			chrome = append(chrome, "[OK] Version: "+r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			chrome = append(chrome, "[OK] Sandbox: enabled")
		} else {
			chrome = append(chrome, "[OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	}
	section("Chrome/Chromium", chrome...)

	env := []string{fmt.Sprintf("[OK] Platform: %s/%s", r.Env.OS, r.Env.Arch)}
	if r.Env.Container {
		env = append(env, fmt.Sprintf("[OK] Container: detected (%s)", r.Env.ContainerHint))
	}
	if r.Env.CI {
		env = append(env, "[OK] CI: detected")
	}
	section("Environment", env...)

	section("Warnings:", tagged("[WARN]", r.Warnings)...)
	section("Errors:", tagged("[ERROR]", r.Errors)...)

	if line, ok := statusLines[r.Status]; ok {
		fmt.Fprintln(w, "Status: "+line)
	}
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: mdsite doctor [--json]

Check the configured directories and, for --pdf, the browser setup.

Flags:
      --json    Print results as JSON
`)
}
