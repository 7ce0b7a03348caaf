// Package dnd5e holds the rules tables and character data shapes for a
// D&D 5.5e character sheet.
package dnd5e

import "fmt"

// CharacterState is one committed version of a character. It is treated as a
// value: operations build a new state with Clone and hand it back instead of
// mutating the one they were given.
// NOTE: This is a data-only struct. Derived is filled by engine.Derive.
type CharacterState struct {
	Name         string
	Alignment    string
	Level        int
	RaceID       string
	SubraceID    string
	ClassID      string
	SubclassID   string
	BackgroundID string

	Scores             AbilityScores
	SaveProficiencies  AbilitySet
	SkillProficiencies SkillSet
	Expertise          SkillSet

	Armor        ArmorSelection
	Combat       Combat
	Spellbook    SpellbookState
	ChosenSpells []string

	Derived DerivedStats
}

// Combat is the free-form combat block of the sheet
type Combat struct {
	HPMax        int
	HPCurrent    int
	HPTemp       int
	DeathSuccess int
	DeathFailure int
	Actions      string
	BonusActions string
	Equipment    string
	Sorcery      *SorceryPoints
}

// SorceryPoints tracks the sorcerer resource
type SorceryPoints struct {
	Available int
	Spent     int
}

// DerivedStats is recomputed from raw fields on every change and is never a
// source of truth.
type DerivedStats struct {
	ProficiencyBonus  int
	Modifiers         [AbilityCount]int
	SavingThrows      [AbilityCount]int
	Skills            [SkillCount]int
	ArmorClass        int
	Initiative        int
	PassivePerception int
	HitPointsAtFirst  int
	Speed             int
}

// NewCharacterState returns a fresh character with default identity,
// the standard array and no armor. Derived is left zero.
func NewCharacterState() *CharacterState {
	return &CharacterState{
		Name:               DefaultName,
		Alignment:          DefaultAlignment,
		Level:              MinLevel,
		Scores:             DefaultAbilityScores(),
		SaveProficiencies:  AbilitySet{},
		SkillProficiencies: SkillSet{},
		Expertise:          SkillSet{},
		Armor:              DefaultArmorSelection(),
		Spellbook:          NewSpellbookState(),
		ChosenSpells:       []string{},
	}
}

// Clone returns a deep copy
func (c *CharacterState) Clone() *CharacterState {
	if c == nil {
		return nil
	}

	out := *c
	out.SaveProficiencies = append(AbilitySet{}, c.SaveProficiencies...)
	out.SkillProficiencies = append(SkillSet{}, c.SkillProficiencies...)
	out.Expertise = append(SkillSet{}, c.Expertise...)
	out.ChosenSpells = append([]string{}, c.ChosenSpells...)
	for l := range c.Spellbook.Prepared {
		out.Spellbook.Prepared[l] = append([]string{}, c.Spellbook.Prepared[l]...)
	}
	if c.Combat.Sorcery != nil {
		sp := *c.Combat.Sorcery
		out.Combat.Sorcery = &sp
	}
	return &out
}

// FormatModifier renders a bonus with an explicit sign: +2, +0, -1
func FormatModifier(mod int) string {
	return fmt.Sprintf("%+d", mod)
}
