package catalog

import (
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/match"
)

// Entry is one enumerable option within a catalog.
type Entry struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is a named, ordered list of entries. It is immutable once built.
type Catalog struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Entries     []Entry `yaml:"entries" json:"entries"`
}

// Lookup returns the entry with exactly this id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.ID == id {
			return e, true
		}
	}

	return Entry{}, false
}

// Has returns true if id is an exact entry id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// IDs returns entry ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		ids[i] = e.ID
	}

	return ids
}

// Resolve maps a stored value onto an entry id. Exact ids win; otherwise
// the value is canonicalised and matched against ids, then display names.
func (c *Catalog) Resolve(raw string) (string, bool) {
	if c.Has(raw) {
		return raw, true
	}

	key := match.Canonical(raw)
	if key == "" {
		return "", false
	}

	for _, e := range c.Entries {
		if match.Canonical(e.ID) == key {
			return e.ID, true
		}
	}

	for _, e := range c.Entries {
		if match.Canonical(e.Name) == key {
			return e.ID, true
		}
	}

	return "", false
}

// Suggest returns up to three ids that look like raw.
func (c *Catalog) Suggest(raw string) []string {
	return match.RankCandidates(raw, c.IDs()).
		Above(match.DefaultSuggestThreshold).
		Top(3).
		IDs()
}
