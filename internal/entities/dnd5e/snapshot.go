package dnd5e

import "strings"

// Snapshot is the exported character record. Spells carries the raw
// spellbook and is normalized on import; the derived fields are informational
// and are recomputed on import.
type Snapshot struct {
	Name                string         `json:"name"`
	Alignment           string         `json:"alignment"`
	Level               int            `json:"level"`
	Race                string         `json:"race"`
	Subrace             string         `json:"subrace,omitempty"`
	Class               string         `json:"class"`
	Subclass            string         `json:"subclass"`
	Background          string         `json:"background"`
	Scores              map[string]int `json:"scores"`
	ProficiencyBonus    int            `json:"proficiency_bonus"`
	Initiative          int            `json:"initiative"`
	SaveProfs           []string       `json:"save_profs"`
	SkillsProficiencies []string       `json:"skills_proficiencies"`
	SkillsExpertise     []string       `json:"skills_expertise"`
	Combat              SnapshotCombat `json:"combat"`
	Spells              any            `json:"spells"`
	Saves               map[string]int `json:"saves,omitempty"`
	Skills              map[string]int `json:"skills,omitempty"`
	PassivePerception   int            `json:"passive_perception,omitempty"`
	ChosenSpells        []string       `json:"chosen_spells,omitempty"`
}

// SnapshotCombat is the combat block of a Snapshot
type SnapshotCombat struct {
	AC           int              `json:"ac"`
	HPMax        int              `json:"hp_max"`
	HPCurrent    int              `json:"hp_current"`
	HPTemp       int              `json:"hp_temp"`
	DeathSuccess int              `json:"death_success"`
	DeathFailure int              `json:"death_failure"`
	Actions      string           `json:"actions"`
	BonusActions string           `json:"bonus_actions"`
	Equipment    string           `json:"equipment"`
	Armor        SnapshotArmor    `json:"armor"`
	Sorcery      *SnapshotSorcery `json:"sorcery,omitempty"`
}

// SnapshotArmor is the armor block of a Snapshot
type SnapshotArmor struct {
	Equipped       string `json:"equipped"`
	Shield         bool   `json:"shield"`
	MiscACBonus    int    `json:"misc_ac_bonus"`
	ManualOverride bool   `json:"manual_override"`
}

// SnapshotSorcery is the sorcery point block of a Snapshot
type SnapshotSorcery struct {
	Available int `json:"available"`
	Spent     int `json:"spent"`
}

// ExportFileName is the download name for a character:
// "Vex the Bold" becomes "vex_the_bold_dnd55e.json".
func ExportFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_")) + "_dnd55e.json"
}
