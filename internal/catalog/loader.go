package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var bundled embed.FS

// File is the root of a catalog YAML document.
type File struct {
	Catalogs []Catalog `yaml:"catalogs"`
}

// Set is an immutable collection of catalogs keyed by name.
type Set struct {
	catalogs map[string]*Catalog
	order    []string
}

var defaultSet = sync.OnceValue(func() *Set {
	set, err := loadFS(bundled, "data")
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled data is invalid: %v", err))
	}

	return set
})

// Default returns the catalogs bundled with the application.
func Default() *Set {
	return defaultSet()
}

// Parse parses a single catalog YAML document into a validated Set.
func Parse(data []byte) (*Set, error) {
	return ParseAll(data)
}

// ParseAll parses several catalog documents into one validated Set.
// Catalog names must be unique across documents.
func ParseAll(docs ...[]byte) (*Set, error) {
	var files []File

	for i, data := range docs {
		var f File

		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML (document %d): %w", i, err)
		}

		files = append(files, f)
	}

	return build(files)
}

// LoadFile loads and parses a catalog YAML file from the given path.
func LoadFile(p string) (*Set, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", p, err)
	}

	return Parse(data)
}

func loadFS(fsys fs.FS, dir string) (*Set, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	docs := make([][]byte, 0, len(names))

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", name, err)
		}

		docs = append(docs, data)
	}

	return ParseAll(docs...)
}

func build(files []File) (*Set, error) {
	set := &Set{catalogs: make(map[string]*Catalog)}

	for _, f := range files {
		for i := range f.Catalogs {
			c := f.Catalogs[i]
			if _, dup := set.catalogs[c.Name]; dup {
				return nil, fmt.Errorf("duplicate catalog %q", c.Name)
			}

			set.catalogs[c.Name] = &c
			set.order = append(set.order, c.Name)
		}
	}

	diags := Validate(set)
	if err := diags.Error(); err != nil {
		return nil, err
	}

	return set, nil
}

// Get returns the catalog with the given name.
func (s *Set) Get(name string) (*Catalog, bool) {
	c, ok := s.catalogs[name]
	return c, ok
}

// Names returns catalog names in load order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// Resolve resolves raw against the named catalog. An unknown catalog
// resolves nothing.
func (s *Set) Resolve(name, raw string) (string, bool) {
	c, ok := s.Get(name)
	if !ok {
		return "", false
	}

	return c.Resolve(raw)
}
