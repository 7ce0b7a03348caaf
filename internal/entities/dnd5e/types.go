package dnd5e

// ReferenceItem is a catalog list entry
type ReferenceItem struct {
	ID   string
	Name string
}

// RaceData represents race information from external source
type RaceData struct {
	ID            string
	Name          string
	Speed         int
	Traits        []ReferenceItem
	Proficiencies []string
	Subraces      []ReferenceItem
}

// SubraceData represents subrace information from external source
type SubraceData struct {
	ID            string
	Name          string
	Traits        []ReferenceItem
	Proficiencies []string
}

// ClassData represents class information from external source
type ClassData struct {
	ID           string
	Name         string
	HitDie       int
	SavingThrows []string
	Subclasses   []ReferenceItem
}

// SubclassData represents subclass information from external source
type SubclassData struct {
	ID          string
	Name        string
	ClassID     string
	Description string
	Features    []FeatureData
	Spells      []ReferenceItem
}

// BackgroundData represents background information from external source
type BackgroundData struct {
	ID            string
	Name          string
	Proficiencies []string
}

// TraitData represents a racial trait. Proficiencies holds grant strings
// such as "Skill: Perception".
type TraitData struct {
	ID            string
	Name          string
	Description   string
	Proficiencies []string
}

// FeatureData represents a class or subclass feature
type FeatureData struct {
	ID            string
	Name          string
	Description   string
	Level         int
	ClassName     string
	Proficiencies []string
}

// SpellData represents spell information from external source
type SpellData struct {
	ID            string
	Name          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Ritual        bool
	Concentration bool
	Description   string
}

// SpellLabel is the picker label "Name (index)"
func SpellLabel(s ReferenceItem) string {
	return s.Name + " (" + s.ID + ")"
}
