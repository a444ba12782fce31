package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build         Build the site (default)")
	fmt.Fprintln(w, "  init          Write a default config file")
	fmt.Fprintln(w, "  doctor        Check the environment for PDF export")
	fmt.Fprintln(w, "  completion    Generate shell completion script")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [base-path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static site: every Markdown page under the content directory")
	fmt.Fprintln(w, "becomes an HTML page at the same relative path in the output directory,")
	fmt.Fprintln(w, "after the static directory has been copied there.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  base-path    Prefix for root-relative URLs (e.g., /my-repo/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>        Markdown pages (default: content)")
	fmt.Fprintln(w, "      --static <dir>         Files copied as-is (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>         Site output, replaced on each build (default: docs)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --base-path <s>        Prefix for root-relative URLs (default: /)")
	fmt.Fprintln(w, "      --template <s>         Template name or .html path")
	fmt.Fprintln(w, "      --style <s>            Style name or .css path (\"\" = none)")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory with styles/ and templates/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "      --engine <s>           Markdown engine: dialect, goldmark")
	fmt.Fprintln(w, "      --highlight-style <s>  Chroma style for code blocks (goldmark)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel page workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>          Build timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --pdf                  Also export every page to PDF")
	fmt.Fprintln(w, "      --watch                Rebuild when sources change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-page details")
	fmt.Fprintln(w, "      --json-log             Log as JSON lines")
	fmt.Fprintln(w, "      --no-color             Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_BASE_PATH, MDSITE_ENGINE, MDSITE_STYLE, MDSITE_TIMEOUT, MDSITE_WORKERS")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintf(w, "  -o, --output <path>    File to write (default: %s)\n", defaultConfigFile)
	fmt.Fprintln(w, "  -f, --force            Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
