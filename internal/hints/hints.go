// Package hints turns common failures into a one-line suggestion.
//
// Every hint renders as "\n  hint: <text>" so callers can append it to an
// error message unchanged. An empty string means there is nothing to add.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// AppName is the directory name searched under the user config directory.
const AppName = "go-mdsite"

// ciVars are set by the CI systems we know about.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// IsInContainer reports whether the process runs in a container.
// Tests swap it out.
var IsInContainer = func() bool {
	return os.Getenv("MDSITE_CONTAINER") == "1" || fileutil.FileExists("/.dockerenv")
}

// InCI reports whether a known CI system is driving the process.
func InCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests how to get Chrome running for --pdf.
func ForBrowserConnect() string {
	var tips []string
	if os.Getenv("ROD_NO_SANDBOX") != "1" && (InCI() || IsInContainer()) {
		tips = append(tips, "set ROD_NO_SANDBOX=1 inside containers and CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "point ROD_BROWSER_BIN at a Chrome binary")
	}
	tips = append(tips, "drop --pdf to build without a browser")
	return render(tips...)
}

// ForTimeout suggests a longer --timeout.
func ForTimeout() string {
	return render("raise --timeout for large sites or slow PDF export")
}

// ForConfigNotFound suggests creating a config. When one of the searched
// paths is the user config location, it is offered as well.
func ForConfigNotFound(searched []string) string {
	tip := "run 'mdsite init' or pass --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(p, AppName) {
			return render(tip + " or create " + p)
		}
	}
	return render(tip)
}

// ForOutputDirectory covers failures writing below the output directory.
func ForOutputDirectory() string {
	return render("make sure the output directory's parent exists and is writable")
}

// ForContentDirectory covers a missing or unreadable content directory.
func ForContentDirectory(dir string) string {
	return render("create " + dir + " with an index.md, or use --content")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return render("available: " + strings.Join(available, ", "))
}

func ForTemplateNotFound() string {
	return render("pass a file path with --template, or place {name}.html under <asset-path>/templates/")
}

func ForInvalidTemplate() string {
	return render("the template must contain {{ Content }}; {{ Title }} is optional")
}

func ForNoTitle() string {
	return render(`start the page with a heading line such as "# My Page"`)
}

// ForUnterminatedDelimiter covers inline markup left open in the dialect.
func ForUnterminatedDelimiter() string {
	return render("close every **, _ and ` on the same block; underscores in URLs count too, " +
		"or use --engine goldmark")
}

func ForUnknownEngine() string {
	return render("supported engines: dialect, goldmark")
}

// render joins tips into one hint line.
func render(tips ...string) string {
	text := strings.Join(tips, "; ")
	if text == "" {
		return ""
	}
	return "\n  hint: " + text
}
