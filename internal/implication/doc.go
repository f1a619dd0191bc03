// Package implication suggests mythic archetypes from a species' biology,
// cognition, environment and pressures.
//
// Each Rule pairs a predicate over a Snapshot with the suggestion it makes:
// the constant the species perceives, the channel an archetype would act
// through, an explanation and an optional archetype form. Rules are
// independent; Generate evaluates all of them and keeps the ones that fire,
// in registration order. Apply turns a chosen Implication into an
// append-only patch for the pantheon list.
//
// Extra rules can be declared in YAML with expr-lang predicates:
//
//	rules:
//	  - id: storm-court
//	    when: 'environment.skyVisibility.Is("variable") && "floods" in pressures.catastrophes'
//	    perceivedConstant: The sky that drowns
//	    archetypeChannel: weather
//	    explanation: Floods arrive under shifting skies.
//	    suggestedArchetypeForm: A rain-bearer quarrelling with the sun
package implication
