// Package cli provides command-line interface functionality for tisgen.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidthShort  = 16 // Width for command-specific flags like "--command-line"
	helpFlagWidthGlobal = 16 // Width for global flags like "--config <file>"
	helpCommandWidth    = 22
)

// wantsHelp returns true if args contain -h or --help before any -- separator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage()
			return 0
		case "--version", "version":
			out.Println("tisgen %s", Version)
			return 0
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	// Without a command tisgen regenerates.
	if len(remaining) == 0 {
		return cmdRegenerate(nil, opts)
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "-h", "--help":
		printUsage()
		return 0
	case "regenerate":
		return cmdRegenerate(cmdArgs, opts)
	case "compdb":
		return cmdCompdb(cmdArgs, opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	case "machdeps":
		return cmdMachdeps(cmdArgs, opts)
	default:
		out.ErrorPrefix("unknown command: %s", cmd)
		out.Errorln("Run 'tisgen --help' for usage.")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Root   string
	Config string
	DryRun bool
	Quiet  bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags
// may appear anywhere in the argument list, including after the command,
// and everything after -- must be preserved verbatim.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--dry-run":
			opts.DryRun = true
			i++
		case arg == "--root" || arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("%s requires a value", arg)
			}
			setPathFlag(opts, arg, args[i+1])
			i += 2
		case strings.HasPrefix(arg, "--root="), strings.HasPrefix(arg, "--config="):
			name, value, _ := strings.Cut(arg, "=")
			if value == "" {
				return nil, nil, fmt.Errorf("%s requires a value", name)
			}
			setPathFlag(opts, name, value)
			i++
		case arg == "--":
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	out.SetQuiet(opts.Quiet)

	return opts, remaining, nil
}

func setPathFlag(opts *GlobalOptions, name, value string) {
	if name == "--root" {
		opts.Root = value
	} else {
		opts.Config = value
	}
}

func printUsage() {
	w := out

	w.HelpTitle("tisgen - TrustInSoft CI configuration generator")

	w.HelpSection("Usage:")
	w.HelpUsage("tisgen [flags]                       Regenerate the analyzer configuration")
	w.HelpUsage("tisgen <command> [args] [flags]")

	w.HelpSection("Commands:")
	w.HelpCommand("regenerate", "Regenerate common.config, <machdep>.config and tis.config", helpCommandWidth)
	w.HelpCommand("compdb normalize <file>", "Sort compilation databases in place", helpCommandWidth)
	w.HelpCommand("compdb options <file>", "Extract -D, -U and -I options from compilation databases", helpCommandWidth)
	w.HelpCommand("config validate", "Validate the settings file", helpCommandWidth)
	w.HelpCommand("machdeps", "List the configured machdeps", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample("tisgen", "Regenerate the configuration of the current directory")
	w.HelpExample("tisgen --root ../miniz --dry-run", "Show what would be generated for another checkout")
	w.HelpExample("tisgen compdb options build/compile_commands.json --command-line", "Print preprocessor flags")
	w.Println("")
}

func printGlobalFlags(w *output.Writer) {
	w.HelpSection("Global Flags:")
	w.HelpFlag("--root <dir>", "Project root (default: current directory)", helpFlagWidthGlobal)
	w.HelpFlag("--config <file>", "Settings file (default: trustinsoft/regenerate.yaml)", helpFlagWidthGlobal)
	w.HelpFlag("--dry-run", "Build and validate without writing files", helpFlagWidthGlobal)
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)
	w.HelpFlag("--version", "Show version", helpFlagWidthGlobal)
}
