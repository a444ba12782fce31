package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pdf"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/sitegen"
)

// Sentinel errors for command dispatch.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// runMain dispatches args[1:] to a command and returns the process exit code.
// Without a command, or when the first argument is a flag or a base path,
// the site is built.
func runMain(ctx context.Context, args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := "build"
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") && !strings.HasPrefix(rest[0], "/") &&
		!strings.Contains(rest[0], "://") {
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
	case "help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.Is(err, pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, sitegen.ErrContentDir):
		return hints.ForContentDirectory("the content directory")
	case errors.Is(err, sitegen.ErrStaticCopy), errors.Is(err, sitegen.ErrWriteStyle):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.EmbeddedStyles())
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound()
	case errors.Is(err, assets.ErrInvalidTemplate):
		return hints.ForInvalidTemplate()
	case errors.Is(err, markdown.ErrNoTitle):
		return hints.ForNoTitle()
	case errors.Is(err, markdown.ErrUnterminatedDelimiter):
		return hints.ForUnterminatedDelimiter()
	case errors.Is(err, pipeline.ErrUnknownEngine):
		return hints.ForUnknownEngine()
	}
	return ""
}
