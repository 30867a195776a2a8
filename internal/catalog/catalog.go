// Package catalog loads learning-path manifests.
//
// A manifest is a YAML file describing one learning path: its id, name,
// and the ordered list of modules it contains. Manifests live in the
// paths/ directory under the ruta root and are the authoring surface of
// the tool, so unlike persisted progress, malformed manifests are
// reported as errors instead of being discarded.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rutadev/ruta/internal/fsops"
)

// Module is one unit of learning-path content.
type Module struct {
	// ID is the opaque identifier progress is tracked against.
	ID string `yaml:"id"`

	// Title is the human-readable module name.
	Title string `yaml:"title"`
}

// Path is a named, ordered collection of modules.
type Path struct {
	// ID identifies the path; it doubles as the progress storage key
	// suffix, so it must be a safe identifier.
	ID string `yaml:"id"`

	// Name is the human-readable path name.
	Name string `yaml:"name"`

	// Description provides additional context about the path.
	Description string `yaml:"description,omitempty"`

	// Modules is the ordered module list.
	Modules []Module `yaml:"modules"`
}

// Total returns the number of modules in the path.
func (p *Path) Total() int {
	return len(p.Modules)
}

// ModuleIDs returns the module ids in path order.
func (p *Path) ModuleIDs() []string {
	ids := make([]string, len(p.Modules))
	for i, m := range p.Modules {
		ids[i] = m.ID
	}
	return ids
}

// HasModule reports whether the path contains a module with the given id.
func (p *Path) HasModule(id string) bool {
	for _, m := range p.Modules {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the manifest invariants: non-empty path id and name,
// at least one module, non-empty module ids, and module id uniqueness.
func (p *Path) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("path id must not be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("path %q: name must not be empty", p.ID)
	}
	if len(p.Modules) == 0 {
		return fmt.Errorf("path %q: must declare at least one module", p.ID)
	}

	seen := make(map[string]bool, len(p.Modules))
	for i, m := range p.Modules {
		if m.ID == "" {
			return fmt.Errorf("path %q: module %d has an empty id", p.ID, i)
		}
		if seen[m.ID] {
			return fmt.Errorf("path %q: duplicate module id %q", p.ID, m.ID)
		}
		seen[m.ID] = true
	}

	return nil
}

// Load reads and validates a single manifest file.
func Load(fs fsops.FS, file string) (*Path, error) {
	data, err := fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
	}

	var p Path
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", file, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", file, err)
	}

	return &p, nil
}

// Catalog is the set of learning paths known to the tool.
type Catalog struct {
	paths map[string]*Path
	order []string
}

// LoadDir loads every *.yaml / *.yml manifest in dir. A missing
// directory yields an empty catalog. Duplicate path ids across files
// are an error.
func LoadDir(fs fsops.FS, dir string) (*Catalog, error) {
	cat := &Catalog{paths: make(map[string]*Path)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("failed to read paths directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		p, err := Load(fs, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := cat.paths[p.ID]; dup {
			return nil, fmt.Errorf("duplicate path id %q in %s", p.ID, entry.Name())
		}
		cat.paths[p.ID] = p
		cat.order = append(cat.order, p.ID)
	}

	sort.Strings(cat.order)
	return cat, nil
}

// Find returns the path with the given id, or nil.
func (c *Catalog) Find(id string) *Path {
	return c.paths[id]
}

// IDs returns all path ids in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of paths in the catalog.
func (c *Catalog) Len() int {
	return len(c.paths)
}
