package engine

import "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"

type engine struct {
}

// Config holds the dependencies of the engine. It has none today.
type Config struct {
}

// Validate validates the config
func (cfg *Config) Validate() error {
	return nil
}

// New creates an Engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) Derive(state *dnd5e.CharacterState) dnd5e.DerivedStats {
	return Derive(state)
}

func (e *engine) AggregateSkillProficiencies(grants *SkillGrants, userSelected []string) dnd5e.SkillSet {
	return AggregateSkillProficiencies(grants, userSelected)
}

func (e *engine) NormalizeSpellbook(raw any) dnd5e.SpellbookState {
	return NormalizeSpellbook(raw)
}

func (e *engine) CalculateProficiencyBonus(level int) int {
	return ProficiencyBonus(level)
}

func (e *engine) CalculateAbilityModifier(score int) int {
	return AbilityModifier(score)
}
