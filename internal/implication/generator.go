package implication

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/common"
)

// PantheonKey is the worksheet key holding the pantheon list.
const PantheonKey = "pantheon"

// maxIDAttempts bounds how often Apply asks the id generator for a free id.
const maxIDAttempts = 8

// Generator evaluates rules against snapshots. It is safe for concurrent use.
type Generator struct {
	rules    []Rule
	catalogs *catalog.Set
	newID    func() string
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRules replaces the rule set.
func WithRules(rules ...Rule) Option {
	return func(g *Generator) { g.rules = rules }
}

// WithExtraRules appends rules after the current set.
func WithExtraRules(rules ...Rule) Option {
	return func(g *Generator) { g.rules = append(common.Clone(g.rules, len(rules)), rules...) }
}

// WithCatalogs sets the catalogs used to normalise snapshots.
func WithCatalogs(set *catalog.Set) Option {
	return func(g *Generator) { g.catalogs = set }
}

// WithIDGenerator sets the function that mints archetype ids.
func WithIDGenerator(fn func() string) Option {
	return func(g *Generator) { g.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a generator with the built-in rules.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rules:    DefaultRules(),
		catalogs: catalog.Default(),
		newID:    uuid.NewString,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Rules returns the generator's rules in evaluation order.
func (g *Generator) Rules() []Rule {
	return common.Clone(g.rules, 0)
}

// Rule returns the rule with the given id.
func (g *Generator) Rule(id string) (Rule, bool) {
	for _, r := range g.rules {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}

// Generate returns the implications of every rule whose predicate holds,
// in rule order. The same snapshot always yields the same list.
func (g *Generator) Generate(s Snapshot) []Implication {
	norm := s.Normalize(g.catalogs)

	out := make([]Implication, 0)

	for _, r := range g.rules {
		if r.Predicate == nil || !r.Predicate(norm) {
			continue
		}

		out = append(out, r.Implication())
	}

	g.logger.Debug("generated implications",
		zap.Int("rules", len(g.rules)),
		zap.Int("fired", len(out)))

	return out
}

// PantheonPatch appends archetypes to the pantheon list.
type PantheonPatch struct {
	Append []Archetype `json:"append"`
}

// Apply creates a new pantheon entry from imp. It is a create, not an
// upsert: applying the same implication twice yields two entries. The id
// is unique within s.
func (g *Generator) Apply(s Snapshot, imp Implication) PantheonPatch {
	taken := make(map[string]bool, len(s.Pantheon))
	for _, a := range s.Pantheon {
		taken[a.ID] = true
	}

	id := g.newID()
	for attempt := 1; taken[id] && attempt < maxIDAttempts; attempt++ {
		id = g.newID()
	}

	// A generator that keeps colliding gets a numbered suffix instead.
	if taken[id] {
		base := id
		for n := 2; taken[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
	}

	return PantheonPatch{Append: []Archetype{{
		ID:                id,
		Channel:           imp.ArchetypeChannel,
		PerceivedConstant: imp.PerceivedConstant,
		Form:              imp.SuggestedArchetypeForm,
		Origin:            imp.RuleID,
	}}}
}

// ApplyTo returns a copy of s with the patch's archetypes appended.
// Existing entries are carried over unchanged.
func (p PantheonPatch) ApplyTo(s Snapshot) Snapshot {
	out := s
	out.Pantheon = append(common.Clone(s.Pantheon, len(p.Append)), p.Append...)

	return out
}

// Merge returns a shallow copy of worksheet data with the archetypes
// appended to its pantheon list. Existing list entries are carried over
// verbatim, including fields Archetype does not model. A pantheon value
// that is not a list is replaced.
func (p PantheonPatch) Merge(dst map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+1)
	for k, v := range dst {
		out[k] = v
	}

	existing, _ := dst[PantheonKey].([]any)

	list := common.Clone(existing, len(p.Append))
	for _, a := range p.Append {
		list = append(list, map[string]any{
			"id":                a.ID,
			"name":              a.Name,
			"channel":           a.Channel,
			"perceivedConstant": a.PerceivedConstant,
			"form":              a.Form,
			"origin":            a.Origin,
		})
	}

	out[PantheonKey] = list

	return out
}

var defaultGenerator = NewGenerator()

// GenerateImplications runs the built-in rules against s.
func GenerateImplications(s Snapshot) []Implication {
	return defaultGenerator.Generate(s)
}

// ApplyImplication applies imp to s with the built-in generator.
func ApplyImplication(s Snapshot, imp Implication) PantheonPatch {
	return defaultGenerator.Apply(s, imp)
}
