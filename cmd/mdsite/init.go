package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/config"
)

// defaultConfigFile is where init writes when no --output is given.
// It is the file a plain build looks up first.
const defaultConfigFile = config.DefaultName + ".yaml"

// runInit writes the default configuration to a YAML file.
func runInit(args []string, env *Environment) error {
	f, positional, err := parseInitFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: init takes no arguments", ErrUsage)
	}

	if err := config.WriteConfig(f.output, config.DefaultConfig(), f.force); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Wrote %s\n", f.output)
	return nil
}
