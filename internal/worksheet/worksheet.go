// Package worksheet stores worksheet rows locally. The rules core treats
// worksheet data as an opaque JSON document; this package only moves it.
package worksheet

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Tool types with rules wired to them.
const (
	ToolParameters = "speculative-parameters"
	ToolPlanet     = "planet-designer"
	ToolMythology  = "alien-mythology"
)

// ErrNotFound is returned when no worksheet has the requested id.
var ErrNotFound = errors.New("worksheet not found")

// Worksheet is one saved tool form.
type Worksheet struct {
	ID        string          `json:"id"`
	WorldID   string          `json:"worldId"`
	ToolType  string          `json:"toolType"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Object decodes Data as a JSON object. Empty or non-object data decodes
// as an empty map.
func (w *Worksheet) Object() map[string]any {
	out := map[string]any{}

	if len(w.Data) == 0 {
		return out
	}

	if err := json.Unmarshal(w.Data, &out); err != nil || out == nil {
		return map[string]any{}
	}

	return out
}

// Store persists worksheets.
type Store interface {
	Create(ctx context.Context, w *Worksheet) error
	Get(ctx context.Context, id string) (*Worksheet, error)
	List(ctx context.Context, worldID string) ([]*Worksheet, error)
	Update(ctx context.Context, id string, data json.RawMessage) error
	Delete(ctx context.Context, id string) error
	Close() error
}
