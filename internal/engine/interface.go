// Package engine derives character statistics from raw sheet inputs.
//
// Everything here is pure and synchronous. Reference data must already be
// resolved before it is handed in; nothing in this package performs I/O or
// returns an error.
package engine

import "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"

// Engine provides game mechanics and rules calculations
type Engine interface {
	// Derive rebuilds all derived statistics for a character
	Derive(state *dnd5e.CharacterState) dnd5e.DerivedStats

	// AggregateSkillProficiencies merges granted and selected skills
	AggregateSkillProficiencies(grants *SkillGrants, userSelected []string) dnd5e.SkillSet

	// NormalizeSpellbook repairs a raw spellbook record
	NormalizeSpellbook(raw any) dnd5e.SpellbookState

	// Utility methods
	CalculateProficiencyBonus(level int) int
	CalculateAbilityModifier(score int) int
}
