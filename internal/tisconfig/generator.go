package tisconfig

import (
	"fmt"

	"github.com/AndreyAkinshin/tisgen/internal/config"
	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
	"github.com/AndreyAkinshin/tisgen/internal/output"
	"github.com/AndreyAkinshin/tisgen/internal/project"
	"github.com/AndreyAkinshin/tisgen/internal/schema"
)

// Output is a generated file: its project-relative path, contents and the
// schema it must satisfy.
type Output struct {
	Path  string
	Kind  schema.Kind
	Value any
}

// Generator regenerates the analyzer configuration of one project.
type Generator struct {
	Root     string
	Settings config.Settings
	Out      *output.Writer
	DryRun   bool
}

// Outputs returns every file the generator writes, in write order.
func Outputs(s config.Settings) []Output {
	outputs := []Output{
		{Path: s.CommonConfig, Kind: schema.Common, Value: BuildSharedConfig(s)},
	}
	for _, p := range s.Machdeps {
		outputs = append(outputs, Output{
			Path:  p.ConfigPath(s.ProjectDir),
			Kind:  schema.Machdep,
			Value: BuildArchitectureConfig(p),
		})
	}
	outputs = append(outputs, Output{
		Path:  s.MasterConfig,
		Kind:  schema.Matrix,
		Value: BuildTestMatrix(s),
	})
	return outputs
}

// Render serializes o and checks it against its schema.
func Render(o Output) ([]byte, error) {
	data, err := jsondoc.Marshal(o.Value)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to serialize '%s'", o.Path))
	}
	if err := schema.Validate(o.Kind, data); err != nil {
		return nil, errors.Validation(o.Path, err)
	}
	return data, nil
}

// Run checks the project layout, then builds, validates and writes every
// output. The first failure aborts the run; files written before it stay.
func (g *Generator) Run() ([]string, error) {
	out := g.Out
	if out == nil {
		out = output.New()
	}

	out.Step(1, "Check if all necessary directories and files exist...")
	if err := g.checkLayout(out); err != nil {
		return nil, err
	}

	outputs := Outputs(g.Settings)
	if g.DryRun {
		out.DryRunStart()
	}

	var written []string
	step := 2
	for i, o := range outputs {
		switch {
		case i == 0:
			out.Step(step, "Generate the '%s' file.", o.Path)
			step++
		case o.Kind == schema.Machdep && outputs[i-1].Kind != schema.Machdep:
			out.Step(step, "Generate '%s/<machdep>.config' files...", g.Settings.ProjectDir)
			step++
		case o.Kind == schema.Matrix:
			out.Step(step, "Generate the '%s' file.", o.Path)
			step++
		}
		if o.Kind == schema.Machdep {
			out.StepDetail("Generate the '%s' file.", o.Path)
		}

		data, err := Render(o)
		if err != nil {
			return written, err
		}
		if g.DryRun {
			out.Info("   would write %s (%d bytes)", o.Path, len(data))
			continue
		}
		if err := jsondoc.WriteFile(project.Resolve(g.Root, o.Path), o.Value); err != nil {
			return written, errors.Wrap(err, fmt.Sprintf("failed to write '%s'", o.Path))
		}
		written = append(written, o.Path)
	}

	if g.DryRun {
		out.DryRunEnd()
	}
	return written, nil
}

// checkLayout verifies the project directory and every input file the
// simulated filesystem copies from.
func (g *Generator) checkLayout(out *output.Writer) error {
	s := g.Settings
	if err := project.CheckDir(g.Root, s.ProjectDir); err != nil {
		out.CheckFailed("Directory '%s' not found.", s.ProjectDir)
		return err
	}
	out.CheckOK("Directory '%s' exists.", s.ProjectDir)

	for _, input := range s.Common.Filesystem.Inputs() {
		if err := project.CheckFile(g.Root, input); err != nil {
			out.CheckFailed("File '%s' not found.", input)
			return err
		}
		out.CheckOK("File '%s' exists.", input)
	}
	return nil
}
