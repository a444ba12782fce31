package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // enum flags
	FileGlob string   // file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"engine": {Values: []string{"dialect", "goldmark"}},
	"style":  {Values: assets.EmbeddedStyles()},

	"config":   {FileGlob: "*.yaml,*.yml"},
	"template": {FileGlob: "*.html"},

	"content":    {IsDir: true},
	"static":     {IsDir: true},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// buildFlagSet returns the build command flags without parsing anything.
func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}
	registerBuildFlags(fs, f)
	return fs
}

// extractFlags converts a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "build", Desc: "Build the site", Flags: extractFlags(buildFlagSet())},
		{Name: "init", Desc: "Write a default config file", Flags: []flagDef{
			{Long: "output", Short: "o", Type: flagFile, Desc: "config file to write", FileGlob: "*.yaml,*.yml"},
			{Long: "force", Short: "f", Type: flagBool, Desc: "overwrite an existing file"},
		}},
		{Name: "doctor", Desc: "Check the environment", Flags: []flagDef{
			{Long: "json", Type: flagBool, Desc: "print results as JSON"},
		}},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// commandNames returns command names in registry order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords returns every spelling of the command's flags, sorted.
func flagWords(c commandDef) []string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	sort.Strings(words)
	return words
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("# bash completion for mdsite\n")
	sb.WriteString("_mdsite() {\n")
	sb.WriteString("    local cur prev cmd\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	sb.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	sb.WriteString("    if [[ ${COMP_CWORD} -eq 1 && ${cur} != -* ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	sb.WriteString("        return\n    fi\n\n")

	sb.WriteString("    case \"${prev}\" in\n")
	for _, f := range cmds[0].Flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")); return ;;\n",
				pattern, strings.Join(f.Values, " "))
		case flagDir:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -d -- \"${cur}\")); return ;;\n", pattern)
		case flagFile:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -f -- \"${cur}\")); return ;;\n", pattern)
		}
	}
	sb.WriteString("    esac\n\n")

	sb.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "completion":
			sb.WriteString("        completion) COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"${cur}\")) ;;\n")
		case c.Name == "help":
			fmt.Fprintf(&sb, "        help) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")) ;;\n",
				strings.Join(commandNames(cmds), " "))
		case len(c.Flags) > 0:
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")) ;;\n",
				c.Name, strings.Join(flagWords(c), " "))
		}
	}
	fmt.Fprintf(&sb, "        *) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")) ;;\n",
		strings.Join(flagWords(cmds[0]), " "))
	sb.WriteString("    esac\n}\n")
	sb.WriteString("complete -F _mdsite mdsite\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("#compdef mdsite\n\n")
	sb.WriteString("_mdsite() {\n")
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        return\n    fi\n\n")
	sb.WriteString("    case ${words[2]} in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "                %s \\\n", zshSpec(f))
		}
		sb.WriteString("                '*:base path:'\n            ;;\n")
	}
	sb.WriteString("        completion)\n            _values 'shell' bash zsh fish powershell\n            ;;\n")
	sb.WriteString("    esac\n}\n\n")
	sb.WriteString("compdef _mdsite mdsite\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// zshSpec formats one _arguments spec.
func zshSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = fmt.Sprintf("{-%s,--%s}", f.Short, f.Long)
	}

	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		action = ":directory:_files -/"
	case flagFile:
		action = `:file:_files -g "(` + strings.ReplaceAll(f.FileGlob, ",", "|") + `)"`
	default:
		action = ":value:"
	}
	return names + "'[" + zshEscape(f.Desc) + "]" + action + "'"
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("# fish completion for mdsite\n")
	sb.WriteString("complete -c mdsite -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c mdsite -n '__fish_use_subcommand' -a %s -d '%s'\n",
			c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "complete -c mdsite -n '__fish_seen_subcommand_from %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&sb, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&sb, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				sb.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagFile:
				sb.WriteString(" -r -F")
			case flagString, flagInt:
				sb.WriteString(" -x")
			}
			fmt.Fprintf(&sb, " -d '%s'\n", fishEscape(f.Desc))
		}
	}
	sb.WriteString("complete -c mdsite -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish powershell'\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var sb strings.Builder

	sb.WriteString("# PowerShell completion for mdsite\n")
	sb.WriteString("Register-ArgumentCompleter -Native -CommandName mdsite -ScriptBlock {\n")
	sb.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	sb.WriteString("    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	sb.WriteString("    $completions = @(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        @{ Cmd = ''; Text = '%s'; Desc = '%s' }\n", c.Name, psEscape(c.Desc))
	}
	for _, c := range cmds {
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "        @{ Cmd = '%s'; Text = '--%s'; Desc = '%s' }\n", c.Name, f.Long, psEscape(f.Desc))
		}
	}
	sb.WriteString("    )\n")
	sb.WriteString("    $cmd = if ($words.Count -gt 1) { $words[1] } else { '' }\n")
	sb.WriteString("    if ($words.Count -le 2 -and -not $wordToComplete.StartsWith('-')) { $cmd = '' }\n")
	sb.WriteString("    $completions | Where-Object { $_.Cmd -eq $cmd -and $_.Text -like \"$wordToComplete*\" } | ForEach-Object {\n")
	sb.WriteString("        [System.Management.Automation.CompletionResult]::new($_.Text, $_.Text, 'ParameterValue', $_.Desc)\n")
	sb.WriteString("    }\n}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    eval \"$(mdsite completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh (before compinit):")
	fmt.Fprintln(w, "    eval \"$(mdsite completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mdsite completion fish > ~/.config/fish/completions/mdsite.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    mdsite completion powershell | Out-String | Invoke-Expression")
}
