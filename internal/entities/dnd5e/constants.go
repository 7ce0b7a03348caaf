package dnd5e

import (
	"sort"
	"strings"
)

// Ability is one of the six base attributes. The zero value is Strength and
// the declaration order is the canonical order used everywhere a sheet is
// rendered or serialized.
type Ability int

// Abilities in canonical order
const (
	AbilityStrength Ability = iota
	AbilityDexterity
	AbilityConstitution
	AbilityIntelligence
	AbilityWisdom
	AbilityCharisma

	AbilityCount = 6
)

var abilityNames = [AbilityCount]string{
	"Strength",
	"Dexterity",
	"Constitution",
	"Intelligence",
	"Wisdom",
	"Charisma",
}

var abilityAbbreviations = [AbilityCount]string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// String returns the display name ("Strength")
func (a Ability) String() string {
	if !a.Valid() {
		return ""
	}
	return abilityNames[a]
}

// Abbreviation returns the three-letter form ("STR")
func (a Ability) Abbreviation() string {
	if !a.Valid() {
		return ""
	}
	return abilityAbbreviations[a]
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	return a >= AbilityStrength && a < AbilityCount
}

// AllAbilities returns the six abilities in canonical order
func AllAbilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// ParseAbility accepts a display name, an abbreviation or the reference
// catalog index ("str"), case-insensitively.
func ParseAbility(s string) (Ability, bool) {
	s = strings.TrimSpace(s)
	for _, a := range AllAbilities() {
		if strings.EqualFold(s, abilityNames[a]) || strings.EqualFold(s, abilityAbbreviations[a]) {
			return a, true
		}
	}
	return 0, false
}

// AbilityScores holds one score per ability, indexed by Ability
type AbilityScores [AbilityCount]int

// Score limits enforced at the input boundary. The engine itself accepts any
// integer.
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// DefaultAbilityScores is the standard array in canonical order
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{15, 14, 13, 12, 10, 8}
}

// Get returns the score for a, or 0 for an invalid ability
func (s AbilityScores) Get(a Ability) int {
	if !a.Valid() {
		return 0
	}
	return s[a]
}

// AbilitySet is a set of abilities kept in canonical order
type AbilitySet []Ability

// NewAbilitySet dedupes and orders the given abilities, dropping invalid ones
func NewAbilitySet(abilities ...Ability) AbilitySet {
	var seen [AbilityCount]bool
	for _, a := range abilities {
		if a.Valid() {
			seen[a] = true
		}
	}
	set := AbilitySet{}
	for _, a := range AllAbilities() {
		if seen[a] {
			set = append(set, a)
		}
	}
	return set
}

// ParseAbilitySet converts names to an AbilitySet; unknown names are dropped
func ParseAbilitySet(names []string) AbilitySet {
	abilities := make([]Ability, 0, len(names))
	for _, n := range names {
		if a, ok := ParseAbility(n); ok {
			abilities = append(abilities, a)
		}
	}
	return NewAbilitySet(abilities...)
}

// Contains reports whether a is in the set
func (s AbilitySet) Contains(a Ability) bool {
	for _, v := range s {
		if v == a {
			return true
		}
	}
	return false
}

// Names returns display names in canonical order
func (s AbilitySet) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.String()
	}
	return names
}

// Skill is one of the eighteen skills. Declaration order is alphabetical by
// display name, so sorting by value sorts by name.
type Skill int

// Skills in alphabetical order
const (
	SkillAcrobatics Skill = iota
	SkillAnimalHandling
	SkillArcana
	SkillAthletics
	SkillDeception
	SkillHistory
	SkillInsight
	SkillIntimidation
	SkillInvestigation
	SkillMedicine
	SkillNature
	SkillPerception
	SkillPerformance
	SkillPersuasion
	SkillReligion
	SkillSleightOfHand
	SkillStealth
	SkillSurvival

	SkillCount = 18
)

var skillNames = [SkillCount]string{
	"Acrobatics",
	"Animal Handling",
	"Arcana",
	"Athletics",
	"Deception",
	"History",
	"Insight",
	"Intimidation",
	"Investigation",
	"Medicine",
	"Nature",
	"Perception",
	"Performance",
	"Persuasion",
	"Religion",
	"Sleight of Hand",
	"Stealth",
	"Survival",
}

var skillAbilities = [SkillCount]Ability{
	AbilityDexterity,    // Acrobatics
	AbilityWisdom,       // Animal Handling
	AbilityIntelligence, // Arcana
	AbilityStrength,     // Athletics
	AbilityCharisma,     // Deception
	AbilityIntelligence, // History
	AbilityWisdom,       // Insight
	AbilityCharisma,     // Intimidation
	AbilityIntelligence, // Investigation
	AbilityWisdom,       // Medicine
	AbilityIntelligence, // Nature
	AbilityWisdom,       // Perception
	AbilityCharisma,     // Performance
	AbilityCharisma,     // Persuasion
	AbilityIntelligence, // Religion
	AbilityDexterity,    // Sleight of Hand
	AbilityDexterity,    // Stealth
	AbilityWisdom,       // Survival
}

// String returns the display name ("Sleight of Hand")
func (s Skill) String() string {
	if !s.Valid() {
		return ""
	}
	return skillNames[s]
}

// Ability returns the ability the skill is keyed off
func (s Skill) Ability() Ability {
	if !s.Valid() {
		return AbilityStrength
	}
	return skillAbilities[s]
}

// Valid reports whether s is in the catalog
func (s Skill) Valid() bool {
	return s >= SkillAcrobatics && s < SkillCount
}

// AllSkills returns the catalog in alphabetical order
func AllSkills() []Skill {
	skills := make([]Skill, SkillCount)
	for i := range skills {
		skills[i] = Skill(i)
	}
	return skills
}

// ParseSkill matches a display name or a catalog index ("sleight-of-hand"),
// case-insensitively.
func ParseSkill(name string) (Skill, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	dashed := strings.ReplaceAll(name, "-", " ")
	for i, n := range skillNames {
		if strings.EqualFold(name, n) || strings.EqualFold(dashed, n) {
			return Skill(i), true
		}
	}
	return 0, false
}

// SkillSet is a deduplicated set of skills kept in alphabetical order
type SkillSet []Skill

// NewSkillSet dedupes and sorts the given skills, dropping invalid ones
func NewSkillSet(skills ...Skill) SkillSet {
	var seen [SkillCount]bool
	for _, s := range skills {
		if s.Valid() {
			seen[s] = true
		}
	}
	set := SkillSet{}
	for i, ok := range seen {
		if ok {
			set = append(set, Skill(i))
		}
	}
	return set
}

// ParseSkillSet converts names to a SkillSet; unknown names are dropped
func ParseSkillSet(names []string) SkillSet {
	skills := make([]Skill, 0, len(names))
	for _, n := range names {
		if s, ok := ParseSkill(n); ok {
			skills = append(skills, s)
		}
	}
	return NewSkillSet(skills...)
}

// Contains reports whether s is in the set
func (set SkillSet) Contains(s Skill) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i] >= s })
	return i < len(set) && set[i] == s
}

// Names returns the display names in alphabetical order
func (set SkillSet) Names() []string {
	names := make([]string, len(set))
	for i, s := range set {
		names[i] = s.String()
	}
	return names
}

// Alignments in the order they are offered
var Alignments = []string{
	"Lawful Good", "Neutral Good", "Chaotic Good",
	"Lawful Neutral", "True Neutral", "Chaotic Neutral",
	"Lawful Evil", "Neutral Evil", "Chaotic Evil",
}

// Defaults for a fresh character
const (
	DefaultName      = "Adventurer"
	DefaultAlignment = "True Neutral"
	DefaultSpeed     = 30
	MinLevel         = 1
	MaxLevel         = 20
)

// IsAlignment reports whether s is one of the nine alignments
func IsAlignment(s string) bool {
	for _, a := range Alignments {
		if a == s {
			return true
		}
	}
	return false
}
