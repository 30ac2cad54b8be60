package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/tisgen/internal/compdb"
	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
)

// cmdCompdb handles compilation database subcommands.
func cmdCompdb(args []string, opts *GlobalOptions) int {
	if len(args) == 0 {
		printCompdbUsage("")
		return errors.ExitConfigError
	}

	sub := args[0]
	subArgs := args[1:]
	if sub == "-h" || sub == "--help" {
		printCompdbUsage("")
		return 0
	}
	if wantsHelp(subArgs) {
		printCompdbUsage(sub)
		return 0
	}

	switch sub {
	case "normalize":
		return cmdCompdbNormalize(subArgs, opts)
	case "options":
		return cmdCompdbOptions(subArgs)
	default:
		out.ErrorPrefix("compdb: unknown subcommand: %s", sub)
		printCompdbUsage("")
		return errors.ExitConfigError
	}
}

// cmdCompdbNormalize rewrites each database in sorted order.
func cmdCompdbNormalize(args []string, opts *GlobalOptions) int {
	files, _, err := parseCompdbArgs("normalize", args, false)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	for _, path := range files {
		if opts.DryRun {
			records, err := compdb.Load(path)
			if err != nil {
				out.ErrorPrefix("%v", err)
				return errors.GetExitCode(err)
			}
			out.Info("would normalize %s (%d entries)", path, len(records))
			continue
		}
		if err := compdb.NormalizeFile(path); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		out.Info("normalized %s", path)
	}
	return 0
}

// cmdCompdbOptions classifies each database and unions the results in
// argument order, later databases taking precedence.
func cmdCompdbOptions(args []string) int {
	files, commandLine, err := parseCompdbArgs("options", args, true)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	var result compdb.Options
	for i, path := range files {
		opts, err := compdb.ClassifyFile(path, nil)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		if i == 0 {
			result = opts
		} else {
			result = compdb.Union(result, opts)
		}
	}

	if commandLine {
		out.Println("%s", result.String())
		return 0
	}
	data, err := jsondoc.Marshal(result)
	if err != nil {
		out.ErrorPrefix("failed to encode options: %v", err)
		return errors.ExitRuntimeError
	}
	out.Println("%s", data)
	return 0
}

// parseCompdbArgs separates database paths from flags. At least one path is
// required.
func parseCompdbArgs(sub string, args []string, allowCommandLine bool) ([]string, bool, error) {
	var files []string
	commandLine := false
	literal := false
	for _, arg := range args {
		switch {
		case literal:
			files = append(files, arg)
		case arg == "--":
			literal = true
		case arg == "--command-line" && allowCommandLine:
			commandLine = true
		case strings.HasPrefix(arg, "-"):
			return nil, false, fmt.Errorf("compdb %s: unknown flag: %s", sub, arg)
		default:
			files = append(files, arg)
		}
	}
	if len(files) == 0 {
		return nil, false, fmt.Errorf("compdb %s: at least one compilation database is required", sub)
	}
	return files, commandLine, nil
}

// printCompdbUsage prints the help text for the compdb command, or for one of
// its subcommands when sub is set.
func printCompdbUsage(sub string) {
	w := out

	w.HelpTitle("tisgen compdb - work with compilation databases")

	w.HelpSection("Usage:")
	switch sub {
	case "normalize":
		w.HelpUsage("tisgen compdb normalize <file>...")
	case "options":
		w.HelpUsage("tisgen compdb options <file>... [--command-line]")
	default:
		w.HelpUsage("tisgen compdb <command> <file>...")
	}

	if sub == "" {
		w.HelpSection("Commands:")
		w.HelpCommand("normalize", "Sort entries by directory, file and arguments, in place", helpFlagWidthShort)
		w.HelpCommand("options", "Print the union of -D, -U and -I options as JSON", helpFlagWidthShort)
	}
	if sub == "" || sub == "options" {
		w.HelpSection("Options:")
		w.HelpFlag("--command-line", "Print options as compiler flags instead of JSON", helpFlagWidthShort)
	}

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, name := range []string{"normalize", "options"} {
		if sub != "" && sub != name {
			continue
		}
		w.HelpExample(fmt.Sprintf("tisgen compdb %s build/compile_commands.json", name),
			fmt.Sprintf("%s one database", titleCase.String(name)))
	}
	if sub == "" || sub == "options" {
		w.HelpExample("tisgen compdb options a.json b.json --command-line",
			"Options of b.json override those of a.json")
	}
	w.Println("")
}
