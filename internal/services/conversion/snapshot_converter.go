// Package conversion provides centralized conversion logic between the
// in-memory character (CharacterState) and its exported record (Snapshot).
package conversion

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// snapshotConverter is the concrete implementation of SnapshotConverter
type snapshotConverter struct {
	engine engine.Engine
}

// SnapshotConverterConfig holds the configuration for creating a converter
type SnapshotConverterConfig struct {
	Engine engine.Engine
}

// Validate ensures the configuration is valid
func (c *SnapshotConverterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Engine == nil {
		return errors.InvalidArgument("engine is required")
	}
	return nil
}

// NewSnapshotConverter creates a new snapshot converter instance
func NewSnapshotConverter(cfg *SnapshotConverterConfig) (SnapshotConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &snapshotConverter{
		engine: cfg.Engine,
	}, nil
}

// ToSnapshot converts CharacterState to Snapshot
func (c *snapshotConverter) ToSnapshot(state *dnd5e.CharacterState) *dnd5e.Snapshot {
	if state == nil {
		return nil
	}

	scores := make(map[string]int, dnd5e.AbilityCount)
	saves := make(map[string]int, dnd5e.AbilityCount)
	for _, a := range dnd5e.AllAbilities() {
		scores[a.String()] = state.Scores[a]
		saves[a.String()] = state.Derived.SavingThrows[a]
	}

	skills := make(map[string]int, dnd5e.SkillCount)
	for _, s := range dnd5e.AllSkills() {
		skills[s.String()] = state.Derived.Skills[s]
	}

	ac := state.Derived.ArmorClass
	if state.Armor.ManualOverride {
		ac = state.Armor.ManualAC
	}

	snap := &dnd5e.Snapshot{
		Name:                state.Name,
		Alignment:           state.Alignment,
		Level:               state.Level,
		Race:                state.RaceID,
		Subrace:             state.SubraceID,
		Class:               state.ClassID,
		Subclass:            state.SubclassID,
		Background:          state.BackgroundID,
		Scores:              scores,
		ProficiencyBonus:    state.Derived.ProficiencyBonus,
		Initiative:          state.Derived.Initiative,
		SaveProfs:           state.SaveProficiencies.Names(),
		SkillsProficiencies: state.SkillProficiencies.Names(),
		SkillsExpertise:     state.Expertise.Names(),
		Combat: dnd5e.SnapshotCombat{
			AC:           ac,
			HPMax:        state.Combat.HPMax,
			HPCurrent:    state.Combat.HPCurrent,
			HPTemp:       state.Combat.HPTemp,
			DeathSuccess: state.Combat.DeathSuccess,
			DeathFailure: state.Combat.DeathFailure,
			Actions:      state.Combat.Actions,
			BonusActions: state.Combat.BonusActions,
			Equipment:    state.Combat.Equipment,
			Armor: dnd5e.SnapshotArmor{
				Equipped:       state.Armor.Equipped,
				Shield:         state.Armor.Shield,
				MiscACBonus:    state.Armor.MiscBonus,
				ManualOverride: state.Armor.ManualOverride,
			},
		},
		Spells:            state.Spellbook.Raw(),
		Saves:             saves,
		Skills:            skills,
		PassivePerception: state.Derived.PassivePerception,
		ChosenSpells:      append([]string{}, state.ChosenSpells...),
	}

	if sp := state.Combat.Sorcery; sp != nil {
		snap.Combat.Sorcery = &dnd5e.SnapshotSorcery{
			Available: sp.Available,
			Spent:     sp.Spent,
		}
	}

	return snap
}

// FromSnapshot converts Snapshot to CharacterState
func (c *snapshotConverter) FromSnapshot(snap *dnd5e.Snapshot) *dnd5e.CharacterState {
	state := dnd5e.NewCharacterState()
	if snap == nil {
		state.Derived = c.engine.Derive(state)
		return state
	}

	if name := strings.TrimSpace(snap.Name); name != "" {
		state.Name = name
	}
	if snap.Alignment != "" {
		state.Alignment = snap.Alignment
	}
	state.Level = engine.ClampLevel(snap.Level)
	state.RaceID = snap.Race
	state.SubraceID = snap.Subrace
	state.ClassID = snap.Class
	state.SubclassID = snap.Subclass
	state.BackgroundID = snap.Background

	for name, score := range snap.Scores {
		if a, ok := dnd5e.ParseAbility(name); ok {
			state.Scores[a] = score
		}
	}

	// A record without save proficiencies gets the class baseline; an
	// explicitly empty list is kept empty.
	if snap.SaveProfs == nil {
		state.SaveProficiencies = dnd5e.DefaultSaveProficiencies(snap.Class)
	} else {
		state.SaveProficiencies = dnd5e.ParseAbilitySet(snap.SaveProfs)
	}

	state.SkillProficiencies = dnd5e.ParseSkillSet(snap.SkillsProficiencies)
	state.Expertise = engine.PruneExpertise(state.SkillProficiencies, dnd5e.ParseSkillSet(snap.SkillsExpertise))

	combat := snap.Combat
	state.Armor = dnd5e.ArmorSelection{
		Equipped:       combat.Armor.Equipped,
		Shield:         combat.Armor.Shield,
		MiscBonus:      combat.Armor.MiscACBonus,
		ManualOverride: combat.Armor.ManualOverride,
	}
	if state.Armor.Equipped == "" {
		state.Armor.Equipped = dnd5e.ArmorUnarmored
	}
	if state.Armor.ManualOverride {
		state.Armor.ManualAC = combat.AC
	}

	state.Combat = dnd5e.Combat{
		HPMax:        combat.HPMax,
		HPCurrent:    combat.HPCurrent,
		HPTemp:       combat.HPTemp,
		DeathSuccess: combat.DeathSuccess,
		DeathFailure: combat.DeathFailure,
		Actions:      combat.Actions,
		BonusActions: combat.BonusActions,
		Equipment:    combat.Equipment,
	}
	if combat.Sorcery != nil {
		state.Combat.Sorcery = &dnd5e.SorceryPoints{
			Available: combat.Sorcery.Available,
			Spent:     combat.Sorcery.Spent,
		}
	}

	state.Spellbook = c.engine.NormalizeSpellbook(snap.Spells)
	state.ChosenSpells = append([]string{}, snap.ChosenSpells...)
	state.Derived = c.engine.Derive(state)

	return state
}

// Marshal encodes a Snapshot as indented JSON
func (c *snapshotConverter) Marshal(snap *dnd5e.Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character")
	}
	return data, nil
}

// Unmarshal decodes a Snapshot one field at a time
func (c *snapshotConverter) Unmarshal(data []byte) (*dnd5e.Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "character record is not a JSON object")
	}
	if fields == nil {
		return nil, errors.InvalidArgument("character record is empty")
	}

	snap := &dnd5e.Snapshot{}
	decodeField(fields, "name", &snap.Name)
	decodeField(fields, "alignment", &snap.Alignment)
	decodeField(fields, "race", &snap.Race)
	decodeField(fields, "subrace", &snap.Subrace)
	decodeField(fields, "class", &snap.Class)
	decodeField(fields, "subclass", &snap.Subclass)
	decodeField(fields, "background", &snap.Background)
	decodeField(fields, "proficiency_bonus", &snap.ProficiencyBonus)
	decodeField(fields, "initiative", &snap.Initiative)
	decodeField(fields, "save_profs", &snap.SaveProfs)
	decodeField(fields, "skills_proficiencies", &snap.SkillsProficiencies)
	decodeField(fields, "skills_expertise", &snap.SkillsExpertise)
	decodeField(fields, "combat", &snap.Combat)
	decodeField(fields, "spells", &snap.Spells)
	decodeField(fields, "saves", &snap.Saves)
	decodeField(fields, "skills", &snap.Skills)
	decodeField(fields, "passive_perception", &snap.PassivePerception)
	decodeField(fields, "chosen_spells", &snap.ChosenSpells)

	var level any
	decodeField(fields, "level", &level)
	if n, ok := wholeNumber(level); ok {
		snap.Level = n
	}

	var scores map[string]any
	decodeField(fields, "scores", &scores)
	if scores != nil {
		snap.Scores = make(map[string]int, len(scores))
		for name, v := range scores {
			if n, ok := wholeNumber(v); ok {
				snap.Scores[name] = n
			}
		}
	}

	return snap, nil
}

// decodeField leaves dst untouched when the field is missing or malformed
func decodeField(fields map[string]json.RawMessage, key string, dst any) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// wholeNumber accepts a decoded JSON number with no fractional part
func wholeNumber(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
