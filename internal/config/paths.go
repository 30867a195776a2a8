// Package config manages ruta configuration and filesystem paths.
//
// Configuration includes the locations of ruta data directories, which
// can be customized via environment variables. The default root is
// ~/.ruta/ containing paths/ (learning-path manifests), progress/ (the
// file backend's data), and config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by ruta.
type Paths struct {
	// Root is the base directory for all ruta data (default: ~/.ruta)
	Root string

	// PathsDir is the directory containing learning-path manifests
	PathsDir string

	// ProgressDir is the data directory of the file backend
	ProgressDir string

	// ConfigFile is the path to the global config file
	ConfigFile string
}

// DefaultPaths returns the default paths for ruta.
// Paths can be overridden with environment variables:
// - RUTA_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("RUTA_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".ruta")
	}

	return &Paths{
		Root:        root,
		PathsDir:    filepath.Join(root, "paths"),
		ProgressDir: filepath.Join(root, "progress"),
		ConfigFile:  filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.PathsDir,
		p.ProgressDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
