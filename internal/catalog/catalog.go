// Package catalog loads the read-only curriculum catalog: one JSON file
// per program, embedded by default, overridable with a directory for
// local catalog authoring.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ajrivet/tassel/internal/domain"
)

//go:embed programs/*.json
var embedded embed.FS

// Catalog is the loaded set of programs, keyed by major.
type Catalog struct {
	programs map[string]*domain.Program
}

// Load reads program files from dir, or from the embedded defaults when
// dir is empty.
func Load(dir string) (*Catalog, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "programs")
		if err != nil {
			return nil, fmt.Errorf("opening embedded catalog: %w", err)
		}
		return loadFS(sub)
	}
	return loadFS(os.DirFS(dir))
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}
	c := &Catalog{programs: make(map[string]*domain.Program)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading program file %s: %w", e.Name(), err)
		}
		var schema programSchema
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing program file %s: %w", e.Name(), err)
		}
		p, err := schema.toDomain()
		if err != nil {
			return nil, fmt.Errorf("program file %s: %w", e.Name(), err)
		}
		if _, dup := c.programs[p.Major]; dup {
			return nil, fmt.Errorf("program file %s: duplicate major %q", e.Name(), p.Major)
		}
		c.programs[p.Major] = p
	}
	if len(c.programs) == 0 {
		return nil, fmt.Errorf("catalog contains no programs")
	}
	return c, nil
}

// Program returns the curriculum for a major.
func (c *Catalog) Program(major string) (*domain.Program, error) {
	p, ok := c.programs[major]
	if !ok {
		return nil, fmt.Errorf("program %q not found in catalog", major)
	}
	return p, nil
}

// Majors lists the loaded program majors, sorted.
func (c *Catalog) Majors() []string {
	majors := make([]string, 0, len(c.programs))
	for m := range c.programs {
		majors = append(majors, m)
	}
	sort.Strings(majors)
	return majors
}

// ResolveDir mirrors the development-override convention: an explicit
// env value wins, then a local ./programs directory, then the embedded
// defaults (empty string).
func ResolveDir(envValue string) string {
	if envValue != "" {
		return envValue
	}
	if stat, err := os.Stat(filepath.Join(".", "programs")); err == nil && stat.IsDir() {
		return "./programs"
	}
	return ""
}
