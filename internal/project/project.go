package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/tisgen/internal/config"
)

// Project is a repository whose analyzer configuration is regenerated.
type Project struct {
	Root     string
	Settings config.Settings
	Warnings []string
}

// LoadProject loads the project rooted at the current directory.
func LoadProject(settingsPath string) (*Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(cwd, settingsPath)
}

// LoadProjectFrom loads the project rooted at root. settingsPath overrides the
// default trustinsoft/regenerate.yaml lookup when non-empty.
func LoadProjectFrom(root, settingsPath string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	settings, warnings, err := config.LoadForProject(abs, settingsPath)
	if err != nil {
		return nil, err
	}

	return &Project{
		Root:     abs,
		Settings: settings,
		Warnings: warnings,
	}, nil
}

// Path returns the filesystem path of a slash-separated project path.
func (p *Project) Path(rel string) string {
	return Resolve(p.Root, rel)
}
