package testutils

import (
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin Oakenshield"

// CreateTestSnapshot creates a level 3 dwarf fighter record with sensible defaults
func CreateTestSnapshot(name string) *dnd5e.Snapshot {
	if name == "" {
		name = TestCharacterName
	}

	return &dnd5e.Snapshot{
		Name:       name,
		Alignment:  "Lawful Good",
		Level:      3,
		Race:       "dwarf",
		Subrace:    "hill-dwarf",
		Class:      "fighter",
		Subclass:   "champion",
		Background: "soldier",
		Scores: map[string]int{
			"Strength": 16, "Dexterity": 12, "Constitution": 15,
			"Intelligence": 10, "Wisdom": 13, "Charisma": 8,
		},
		ProficiencyBonus:    2,
		Initiative:          1,
		SaveProfs:           []string{"Strength", "Constitution"},
		SkillsProficiencies: []string{"Athletics", "Intimidation"},
		SkillsExpertise:     []string{},
		Combat: dnd5e.SnapshotCombat{
			AC:        18,
			HPMax:     28,
			HPCurrent: 28,
			Equipment: "Chain mail, shield, warhammer",
			Armor: dnd5e.SnapshotArmor{
				Equipped: dnd5e.ArmorChainMail,
				Shield:   true,
			},
		},
		Spells: dnd5e.NewSpellbookState().Raw(),
	}
}
