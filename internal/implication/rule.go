package implication

// Predicate tests a snapshot. Predicates must depend on the snapshot only.
type Predicate func(s Snapshot) bool

// Rule is one condition -> suggestion pair.
type Rule struct {
	ID                     string
	Predicate              Predicate
	PerceivedConstant      string
	ArchetypeChannel       string
	Explanation            string
	SuggestedArchetypeForm string
}

// Implication is a suggestion produced by a rule that fired.
type Implication struct {
	RuleID                 string `json:"ruleId"`
	PerceivedConstant      string `json:"perceivedConstant"`
	ArchetypeChannel       string `json:"archetypeChannel"`
	Explanation            string `json:"explanation"`
	SuggestedArchetypeForm string `json:"suggestedArchetypeForm,omitempty"`
}

// Implication returns the suggestion this rule makes.
func (r Rule) Implication() Implication {
	return Implication{
		RuleID:                 r.ID,
		PerceivedConstant:      r.PerceivedConstant,
		ArchetypeChannel:       r.ArchetypeChannel,
		Explanation:            r.Explanation,
		SuggestedArchetypeForm: r.SuggestedArchetypeForm,
	}
}

// DefaultRules returns the built-in rules in display order.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID: "hive-mind",
			Predicate: func(s Snapshot) bool {
				return s.CognitiveArchitecture.ConsciousnessType.Is("hive")
			},
			PerceivedConstant:      "The one voice beneath every body",
			ArchetypeChannel:       "collective",
			Explanation:            "A hive mind never experiences a self apart from the whole, so the whole itself becomes sacred.",
			SuggestedArchetypeForm: "A Queen-of-All whose thoughts every drone hears",
		},
		{
			ID: "distributed-mind",
			Predicate: func(s Snapshot) bool {
				return s.CognitiveArchitecture.ConsciousnessType.Is("distributed")
			},
			PerceivedConstant:      "The web that thinks between nodes",
			ArchetypeChannel:       "connection",
			Explanation:            "Minds spread across a network locate the divine in the links rather than the nodes.",
			SuggestedArchetypeForm: "A weaver whose threads are thoughts",
		},
		{
			ID: "episodic-mind",
			Predicate: func(s Snapshot) bool {
				return s.CognitiveArchitecture.ConsciousnessType.Is("episodic")
			},
			PerceivedConstant:      "The dark between wakings",
			ArchetypeChannel:       "sleep",
			Explanation:            "Awareness that switches off leaves gaps a mythology must explain.",
			SuggestedArchetypeForm: "A keeper who holds the self while it is gone",
		},
		{
			ID: "dual-mind",
			Predicate: func(s Snapshot) bool {
				return s.CognitiveArchitecture.ConsciousnessType.Is("dual")
			},
			PerceivedConstant:      "The other who shares the skull",
			ArchetypeChannel:       "duality",
			Explanation:            "Two minds per body make negotiation and partnership the first moral facts.",
			SuggestedArchetypeForm: "Paired gods who must agree before they act",
		},
		{
			ID: "echolocation",
			Predicate: func(s Snapshot) bool {
				return s.Biology.HasSense("echolocation")
			},
			PerceivedConstant:      "Every call returns",
			ArchetypeChannel:       "sound",
			Explanation:            "A species that sees by echo treats silence as blindness and the answering world as a voice.",
			SuggestedArchetypeForm: "An Answerer who speaks only in returned song",
		},
		{
			ID: "field-senses",
			Predicate: func(s Snapshot) bool {
				return s.Biology.HasSense("electroreception") || s.Biology.HasSense("magnetoreception")
			},
			PerceivedConstant:      "The invisible lines that bind the world",
			ArchetypeChannel:       "force",
			Explanation:            "Sensing fields reveals structure other species cannot perceive, suggesting a hidden order.",
			SuggestedArchetypeForm: "A lattice-spirit drawn in lines of force",
		},
		{
			ID: "sightless",
			Predicate: func(s Snapshot) bool {
				return len(s.Biology.Senses) > 0 && !s.Biology.HasSense("vision")
			},
			PerceivedConstant:      "The world is known by touch and scent, never by light",
			ArchetypeChannel:       "contact",
			Explanation:            "Without vision, the sacred is what can be felt or tasted, not what shines.",
			SuggestedArchetypeForm: "A presence known by its texture and smell",
		},
		{
			ID: "tidal-lock",
			Predicate: func(s Snapshot) bool {
				return s.Environment.DayNightCycle.Is("locked")
			},
			PerceivedConstant:      "The sun that never moves",
			ArchetypeChannel:       "sky",
			Explanation:            "On a tidally locked world the sun is fixed, so it reads as a watching eye or an unchanging throne.",
			SuggestedArchetypeForm: "An eternal sovereign frozen at the zenith, and a night-realm beyond the terminator",
		},
		{
			ID: "multiple-suns",
			Predicate: func(s Snapshot) bool {
				return s.Environment.StellarEnvironment.In("binary", "trinary")
			},
			PerceivedConstant:      "More than one light rules the sky",
			ArchetypeChannel:       "sky",
			Explanation:            "Multiple suns invite myths of siblings, rivals or lovers chasing one another.",
			SuggestedArchetypeForm: "Sun-siblings whose dance sets the seasons",
		},
		{
			ID: "flaring-star",
			Predicate: func(s Snapshot) bool {
				return s.Environment.StellarEnvironment.Is("red-dwarf") || s.Pressures.Suffered("stellar-flares")
			},
			PerceivedConstant:      "The sun sometimes strikes",
			ArchetypeChannel:       "wrath",
			Explanation:            "Flares that burn without warning make the sun a temperamental power to be appeased.",
			SuggestedArchetypeForm: "A red eye that must be soothed with rites",
		},
		{
			ID: "hidden-sky",
			Predicate: func(s Snapshot) bool {
				return s.Environment.SkyVisibility.In("perpetual-cloud", "subterranean")
			},
			PerceivedConstant:      "There is no sky, only a ceiling",
			ArchetypeChannel:       "boundary",
			Explanation:            "A species that never sees the stars imagines what lies above the ceiling.",
			SuggestedArchetypeForm: "A veiled guardian of the world's lid",
		},
		{
			ID: "ocean-world",
			Predicate: func(s Snapshot) bool {
				return s.Environment.PlanetType.Is("ocean-world") || s.Environment.Hydrosphere.Is("global-ocean")
			},
			PerceivedConstant:      "The deep has no floor",
			ArchetypeChannel:       "depth",
			Explanation:            "Without shores, up and down replace near and far as the axis of the sacred.",
			SuggestedArchetypeForm: "A leviathan mother in the lightless abyss",
		},
		{
			ID: "many-moons",
			Predicate: func(s Snapshot) bool {
				return s.Environment.MoonSystem.In("multiple", "ringed")
			},
			PerceivedConstant:      "The night sky is crowded and ever-changing",
			ArchetypeChannel:       "night",
			Explanation:            "Several moons or rings produce complex cycles ripe for a court of lesser powers.",
			SuggestedArchetypeForm: "A wandering court of moon-lords",
		},
		{
			ID: "extreme-seasons",
			Predicate: func(s Snapshot) bool {
				return s.Environment.Seasonality.In("extreme", "chaotic")
			},
			PerceivedConstant:      "The world dies and returns",
			ArchetypeChannel:       "cycle",
			Explanation:            "Harsh seasons make survival of the turning the central drama of belief.",
			SuggestedArchetypeForm: "A dying-and-rising god of the long winter",
		},
		{
			ID: "heavy-world",
			Predicate: func(s Snapshot) bool {
				return s.Environment.PlanetType.In("super-earth", "mega-earth")
			},
			PerceivedConstant:      "Everything is pulled down",
			ArchetypeChannel:       "burden",
			Explanation:            "High gravity makes falling deadly and height holy.",
			SuggestedArchetypeForm: "A titan who holds up the sky at great cost",
		},
		{
			ID: "long-lived",
			Predicate: func(s Snapshot) bool {
				return s.Biology.Lifespan.In("long", "near-immortal")
			},
			PerceivedConstant:      "Elders remember the beginning",
			ArchetypeChannel:       "memory",
			Explanation:            "When individuals live for centuries, living elders blur into ancestors and gods.",
			SuggestedArchetypeForm: "The Eldest, still alive and still remembering",
		},
		{
			ID: "short-lived",
			Predicate: func(s Snapshot) bool {
				return s.Biology.Lifespan.In("ephemeral", "short")
			},
			PerceivedConstant:      "No one lives to see the pattern",
			ArchetypeChannel:       "urgency",
			Explanation:            "Brief lives push meaning into the lineage and the message passed on.",
			SuggestedArchetypeForm: "A flame passed hand to hand",
		},
		{
			ID: "transformation",
			Predicate: func(s Snapshot) bool {
				return s.Biology.Lifecycle.In("metamorphic", "cyclical-rebirth")
			},
			PerceivedConstant:      "Every self becomes another",
			ArchetypeChannel:       "change",
			Explanation:            "Radical transformation within one life makes change itself the sacred mystery.",
			SuggestedArchetypeForm: "A chrysalis god who is never the same twice",
		},
		{
			ID: "genetic-memory",
			Predicate: func(s Snapshot) bool {
				return s.CognitiveArchitecture.MemoryInheritance.In("genetic", "shared")
			},
			PerceivedConstant:      "The ancestors speak from inside",
			ArchetypeChannel:       "lineage",
			Explanation:            "Inherited memory makes the dead literally present in the living.",
			SuggestedArchetypeForm: "A chorus of forebears within every mind",
		},
		{
			ID: "light-eater",
			Predicate: func(s Snapshot) bool {
				return s.Biology.Diet.Is("photosynthetic")
			},
			PerceivedConstant:      "Light is food",
			ArchetypeChannel:       "sustenance",
			Explanation:            "A species fed directly by its star sees the sun as provider, not merely as light.",
			SuggestedArchetypeForm: "A generous sun who feeds with its gaze",
		},
		{
			ID: "apex-predator",
			Predicate: func(s Snapshot) bool {
				return s.Pressures.Predation.Is("apex")
			},
			PerceivedConstant:      "Nothing hunts us",
			ArchetypeChannel:       "dominion",
			Explanation:            "Apex predators frame the world as a hunting ground given to them.",
			SuggestedArchetypeForm: "A first hunter who granted the world as prey",
		},
		{
			ID: "hunted",
			Predicate: func(s Snapshot) bool {
				return s.Pressures.Predation.Is("prey")
			},
			PerceivedConstant:      "Something is always watching",
			ArchetypeChannel:       "vigilance",
			Explanation:            "Constant predation rewards vigilance; the unseen watcher becomes a power.",
			SuggestedArchetypeForm: "A watcher in the dark, feared and placated",
		},
		{
			ID: "sky-stones",
			Predicate: func(s Snapshot) bool {
				return s.Pressures.Suffered("impacts")
			},
			PerceivedConstant:      "The sky throws stones",
			ArchetypeChannel:       "judgement",
			Explanation:            "Impacts remembered in story read as punishment from above.",
			SuggestedArchetypeForm: "A thrower of fire from the heavens",
		},
	}
}
