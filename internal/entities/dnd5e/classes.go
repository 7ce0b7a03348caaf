package dnd5e

import "strings"

// Class indices as used by the reference catalog
const (
	ClassBarbarian = "barbarian"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassFighter   = "fighter"
	ClassMonk      = "monk"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassRogue     = "rogue"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

var classSavingThrows = map[string][2]Ability{
	ClassBarbarian: {AbilityStrength, AbilityConstitution},
	ClassBard:      {AbilityDexterity, AbilityCharisma},
	ClassCleric:    {AbilityWisdom, AbilityCharisma},
	ClassDruid:     {AbilityIntelligence, AbilityWisdom},
	ClassFighter:   {AbilityStrength, AbilityConstitution},
	ClassMonk:      {AbilityStrength, AbilityDexterity},
	ClassPaladin:   {AbilityWisdom, AbilityCharisma},
	ClassRanger:    {AbilityStrength, AbilityDexterity},
	ClassRogue:     {AbilityDexterity, AbilityIntelligence},
	ClassSorcerer:  {AbilityConstitution, AbilityCharisma},
	ClassWarlock:   {AbilityWisdom, AbilityCharisma},
	ClassWizard:    {AbilityIntelligence, AbilityWisdom},
}

// CatalogIndex turns a display name into a catalog index:
// "Path of the Berserker" becomes "path-of-the-berserker".
func CatalogIndex(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// DefaultSaveProficiencies returns the baseline saving throws for a class.
// Unknown classes get an empty set.
func DefaultSaveProficiencies(classID string) AbilitySet {
	saves, ok := classSavingThrows[CatalogIndex(classID)]
	if !ok {
		return AbilitySet{}
	}
	return NewAbilitySet(saves[0], saves[1])
}

// IsSorcerer reports whether the class tracks sorcery points
func IsSorcerer(classID string) bool {
	return CatalogIndex(classID) == ClassSorcerer
}
