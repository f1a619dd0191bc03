package catalog

import (
	"fmt"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/diagnostic"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/match"
)

// Validate checks every catalog in the set. Ids must be non-empty, unique
// and already in canonical form, and must not use the reserved "other" id.
func Validate(s *Set) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, name := range s.order {
		validateCatalog(&diags, s.catalogs[name])
	}

	return diags
}

func validateCatalog(diags *diagnostic.Diagnostics, c *Catalog) {
	if c.Name == "" {
		diags.AddError("missing_catalog_name", "catalog must have a name", "", "")
	}

	if len(c.Entries) == 0 {
		diags.AddWarning("empty_catalog", "catalog has no entries", c.Name, "")
	}

	seen := make(map[string]bool, len(c.Entries))

	for i, e := range c.Entries {
		switch {
		case e.ID == "":
			diags.AddError("missing_id", fmt.Sprintf("entry %d has no id", i), c.Name, "")
			continue
		case e.ID == OtherID:
			diags.AddError("reserved_id", fmt.Sprintf("id %q is reserved for custom answers", OtherID), c.Name, e.ID)
		case match.Canonical(e.ID) != e.ID:
			diags.AddError("non_canonical_id",
				fmt.Sprintf("id %q is not canonical, expected %q", e.ID, match.Canonical(e.ID)), c.Name, e.ID)
		}

		if seen[e.ID] {
			diags.AddError("duplicate_id", fmt.Sprintf("duplicate entry id %q", e.ID), c.Name, e.ID)
		}

		seen[e.ID] = true

		if e.Name == "" {
			diags.AddWarning("missing_name", "entry has no display name", c.Name, e.ID)
		}
	}
}
