package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OtherID is the legacy sentinel id stored when a user picked "Other".
const OtherID = "other"

// Selection is a categorical answer: either a catalog id (Known) or free
// text the user typed (Custom). The zero value is an empty answer.
type Selection struct {
	id     string
	text   string
	custom bool
}

// Known returns a selection of the catalog entry id.
func Known(id string) Selection {
	return Selection{id: id}
}

// Custom returns a free-text selection.
func Custom(text string) Selection {
	return Selection{text: text, custom: true}
}

// IsZero returns true if nothing was selected.
func (s Selection) IsZero() bool {
	return !s.custom && s.id == ""
}

// IsKnown returns true for a catalog id selection.
func (s Selection) IsKnown() bool {
	return !s.custom && s.id != ""
}

// IsCustom returns true for a free-text selection.
func (s Selection) IsCustom() bool {
	return s.custom
}

// ID returns the catalog id, or "" for custom and empty selections.
func (s Selection) ID() string {
	return s.id
}

// Text returns the custom text, or "" for known selections.
func (s Selection) Text() string {
	return s.text
}

// Is returns true if the selection is the known id.
func (s Selection) Is(id string) bool {
	return !s.custom && s.id == id
}

// In returns true if the selection is any of the known ids.
func (s Selection) In(ids ...string) bool {
	for _, id := range ids {
		if s.Is(id) {
			return true
		}
	}

	return false
}

// String renders the selection for display.
func (s Selection) String() string {
	if s.IsCustom() {
		return OtherID + ": " + s.Text()
	}

	return s.ID()
}

// Resolve canonicalises a known id against c. Ids c does not recognise are
// kept as free text so the answer is not lost.
func (s Selection) Resolve(c *Catalog) Selection {
	if !s.IsKnown() {
		return s
	}

	if id, ok := c.Resolve(s.id); ok {
		return Known(id)
	}

	return Custom(s.id)
}

type customForm struct {
	Other string `json:"other" yaml:"other"`
}

// MarshalJSON encodes Known as a bare string and Custom as {"other": text}.
func (s Selection) MarshalJSON() ([]byte, error) {
	if s.custom {
		return json.Marshal(customForm{Other: s.text})
	}

	return json.Marshal(s.id)
}

// UnmarshalJSON accepts a bare id string, the legacy "other" sentinel,
// {"other": text} or null. Anything else decodes as an empty selection.
func (s *Selection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = Selection{}
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("selection: %w", err)
		}

		*s = fromID(id)
	case data[0] == '{':
		var cf customForm
		if err := json.Unmarshal(data, &cf); err != nil {
			return fmt.Errorf("selection: %w", err)
		}

		*s = Custom(cf.Other)
	default:
		*s = Selection{}
	}

	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = Selection{}
			return nil
		}

		*s = fromID(node.Value)
	case yaml.MappingNode:
		var cf customForm
		if err := node.Decode(&cf); err != nil {
			return fmt.Errorf("selection: %w", err)
		}

		*s = Custom(cf.Other)
	default:
		*s = Selection{}
	}

	return nil
}

func fromID(id string) Selection {
	if id == OtherID {
		return Custom("")
	}

	return Known(id)
}
