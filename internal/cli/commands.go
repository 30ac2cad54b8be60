package cli

import (
	"strings"

	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/machdep"
	"github.com/AndreyAkinshin/tisgen/internal/project"
	"github.com/AndreyAkinshin/tisgen/internal/tisconfig"
)

// loadProject loads the project selected by the global flags and reports
// settings warnings. Returns the project and exit code 0 on success, or nil
// and the exit code of the failure.
func loadProject(opts *GlobalOptions) (*project.Project, int) {
	var (
		proj *project.Project
		err  error
	)
	if opts.Root != "" {
		proj, err = project.LoadProjectFrom(opts.Root, opts.Config)
	} else {
		proj, err = project.LoadProject(opts.Config)
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	for _, w := range proj.Warnings {
		out.Warning("%s", w)
	}
	return proj, 0
}

// cmdRegenerate writes the shared, per-machdep and matrix configuration files.
func cmdRegenerate(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printRegenerateUsage()
		return 0
	}
	if len(args) > 0 {
		out.ErrorPrefix("regenerate: unexpected argument: %s", args[0])
		return errors.ExitConfigError
	}

	proj, code := loadProject(opts)
	if proj == nil {
		return code
	}

	g := &tisconfig.Generator{
		Root:     proj.Root,
		Settings: proj.Settings,
		Out:      out,
		DryRun:   opts.DryRun,
	}
	written, err := g.Run()
	if err != nil {
		// Missing directories and files were already reported by the check step.
		if !errors.IsNotFound(err) {
			out.ErrorPrefix("%v", err)
		}
		return errors.GetExitCode(err)
	}

	if !opts.DryRun {
		out.FinalSuccess("Generated %d files.", len(written))
	}
	return 0
}

// cmdConfig handles settings file subcommands.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) == 0 || wantsHelp(args) {
		printConfigUsage()
		if len(args) == 0 {
			return errors.ExitConfigError
		}
		return 0
	}

	switch args[0] {
	case "validate":
		proj, code := loadProject(opts)
		if proj == nil {
			return code
		}
		out.FinalSuccess("Settings are valid (%d machdeps, %d example functions).",
			len(proj.Settings.Machdeps), len(proj.Settings.Examples.Functions))
		return 0
	default:
		out.ErrorPrefix("config: unknown subcommand: %s", args[0])
		printConfigUsage()
		return errors.ExitConfigError
	}
}

// cmdMachdeps lists the configured machdeps and the files generated for them.
func cmdMachdeps(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printMachdepsUsage()
		return 0
	}

	proj, code := loadProject(opts)
	if proj == nil {
		return code
	}

	s := proj.Settings
	rows := make([][]string, 0, len(s.Machdeps))
	for _, p := range s.Machdeps {
		rows = append(rows, []string{
			p.Name,
			p.PrettyName,
			p.ConfigPath(s.ProjectDir),
			strings.Join(p.Fields.Keys(), ", "),
		})
	}
	out.Table([]string{"MACHDEP", "NAME", "CONFIG", "FIELDS"}, rows)

	if _, ok := machdep.Lookup(s.Machdeps, s.Common.Machdep); ok {
		out.Println("")
		out.Println("Shared default: %s", s.Common.Machdep)
	}
	return 0
}

func printRegenerateUsage() {
	w := out

	w.HelpTitle("tisgen regenerate - regenerate the analyzer configuration")

	w.HelpSection("Usage:")
	w.HelpUsage("tisgen [regenerate] [flags]")

	w.HelpSection("Description:")
	w.Println("  Checks that the project directory and every simulated-filesystem")
	w.Println("  input exist, then writes the shared configuration, one configuration")
	w.Println("  per machdep and the test matrix.")

	printGlobalFlags(w)
	w.Println("")
}

func printConfigUsage() {
	w := out

	w.HelpTitle("tisgen config - inspect the settings file")

	w.HelpSection("Usage:")
	w.HelpUsage("tisgen config validate [--config <file>]")

	w.HelpSection("Commands:")
	w.HelpCommand("validate", "Check the settings file against its schema", helpFlagWidthShort)
	w.Println("")
}

func printMachdepsUsage() {
	w := out

	w.HelpTitle("tisgen machdeps - list target architectures")

	w.HelpSection("Usage:")
	w.HelpUsage("tisgen machdeps [--config <file>]")
	w.Println("")
}
