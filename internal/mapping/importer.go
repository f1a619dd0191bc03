package mapping

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/diagnostic"
)

// PreviewEntry is one human-readable line of an import preview.
type PreviewEntry struct {
	// Field is the destination JSON key.
	Field string `json:"field"`
	// Value is the transformed destination value.
	Value string `json:"value"`
	// From describes the source selection, e.g. "gravity: high".
	From string `json:"from"`
}

// Importer evaluates the rule table against source worksheets. It holds no
// mutable state and is safe for concurrent use.
type Importer struct {
	table    *Table
	catalogs *catalog.Set
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithTable replaces the rule table.
func WithTable(t *Table) Option {
	return func(im *Importer) { im.table = t }
}

// WithCatalogs replaces the catalogs used to canonicalise source values.
func WithCatalogs(set *catalog.Set) Option {
	return func(im *Importer) { im.catalogs = set }
}

// WithClock sets the clock used for link markers.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) { im.now = now }
}

// WithLogger sets the logger that receives skip diagnostics at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(im *Importer) { im.logger = logger }
}

// NewImporter creates an importer over the bundled catalogs and default rules.
func NewImporter(opts ...Option) *Importer {
	im := &Importer{
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(im)
	}

	if im.catalogs == nil {
		im.catalogs = catalog.Default()
	}

	if im.table == nil {
		im.table = DefaultTable(DefaultTransforms(im.catalogs))
	}

	return im
}

// Table returns the importer's rule table.
func (im *Importer) Table() *Table {
	return im.table
}

type resolved struct {
	field Field
	entry PreviewEntry
}

// resolve runs every selection in src through the table.
func (im *Importer) resolve(src Source) ([]resolved, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	sels, reason := readSelections(src.Data)
	if reason != "" {
		diags.AddInfo(reason, "source has no importable parameter section", src.WorksheetID, "")
	}

	out := make([]resolved, 0, len(sels))

	for _, sel := range sels {
		rule, ok := im.table.Lookup(sel.Category)
		if !ok || rule.Transform == nil || !rule.Field.IsValid() {
			diags.AddInfo("unmapped_category",
				fmt.Sprintf("no rule for category %q", sel.Category), sel.Category, "")
			continue
		}

		if !sel.HasValue {
			diags.AddInfo("missing_value", "category selected without a value", sel.Category, rule.Field.String())
			continue
		}

		value := sel.Value
		if c, ok := im.catalogs.Get(sel.Category); ok {
			if id, ok := c.Resolve(sel.Value); ok {
				value = id
			}
		}

		target, ok := rule.Transform.Apply(value)
		if !ok || target == "" {
			var suggestions []string
			if c, ok := im.catalogs.Get(sel.Category); ok {
				suggestions = c.Suggest(sel.Value)
			}

			diags.AddInfo("unmapped_value",
				fmt.Sprintf("%s has no mapping for %q", rule.Transform.Name, sel.Value),
				sel.Category, rule.Field.String(), suggestions...)

			continue
		}

		out = append(out, resolved{
			field: rule.Field,
			entry: PreviewEntry{
				Field: rule.Field.String(),
				Value: target,
				From:  sel.Category + ": " + value,
			},
		})
	}

	return out, diags
}

// Preview lists what importing src would write, in selection order.
// Sources without a recognised parameter section preview as empty.
func (im *Importer) Preview(src Source) []PreviewEntry {
	entries, diags := im.PreviewWithDiagnostics(src)
	diags.Log(im.logger)

	return entries
}

// PreviewWithDiagnostics is Preview plus a record of everything skipped.
func (im *Importer) PreviewWithDiagnostics(src Source) ([]PreviewEntry, diagnostic.Diagnostics) {
	res, diags := im.resolve(src)

	entries := make([]PreviewEntry, 0, len(res))
	for _, r := range res {
		entries = append(entries, r.entry)
	}

	return entries, diags
}

// BuildPatch writes every resolved selection into a fresh PlanetPatch. A
// later selection for the same field overwrites an earlier one. When
// linkRequested is set the result carries a link marker stamped with the
// importer's clock.
func (im *Importer) BuildPatch(src Source, linkRequested bool) ImportResult {
	res, diags := im.resolve(src)
	diags.Log(im.logger)

	var result ImportResult

	for _, r := range res {
		result.Patch.Set(r.field, r.entry.Value)
	}

	if linkRequested {
		result.Link = &Link{
			SourceWorksheetID: src.WorksheetID,
			SyncedAt:          im.now().UTC(),
		}
	}

	return result
}

// ComputePreview previews data with the default importer.
func ComputePreview(data []byte) []PreviewEntry {
	return NewImporter().Preview(Source{Data: data})
}

// BuildImportPatch builds a patch for src with the default importer.
func BuildImportPatch(src Source, linkRequested bool) ImportResult {
	return NewImporter().BuildPatch(src, linkRequested)
}
