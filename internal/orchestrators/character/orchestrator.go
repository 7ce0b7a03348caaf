// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
	characterrepo "github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/content"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/conversion"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo  characterrepo.Repository
	Engine         engine.Engine
	ExternalClient external.Client
	Converter      conversion.SnapshotConverter
	DiceService    dice.Service

	// Homebrew is optional user content layered over the reference data
	Homebrew *content.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo  characterrepo.Repository
	engine         engine.Engine
	externalClient external.Client
	converter      conversion.SnapshotConverter
	diceService    dice.Service
	catalog        *content.Catalog
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo:  cfg.CharacterRepo,
		engine:         cfg.Engine,
		externalClient: cfg.ExternalClient,
		converter:      cfg.Converter,
		diceService:    cfg.DiceService,
		catalog:        content.EffectiveCatalog(nil, cfg.Homebrew),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

const errCharacterRequired = "character is required"

// edit clones the input character, applies fn and re-derives. The caller's
// state is left untouched.
func (o *Orchestrator) edit(state *dnd5e.CharacterState, fn func(next *dnd5e.CharacterState) error) (*character.StateOutput, error) {
	if state == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	next := state.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	return &character.StateOutput{Character: o.commit(next)}, nil
}

// commit recomputes the derived block; stored derived values are never trusted
func (o *Orchestrator) commit(state *dnd5e.CharacterState) *dnd5e.CharacterState {
	state.Derived = o.engine.Derive(state)
	return state
}

// NewCharacter returns a fresh character with the standard array
func (o *Orchestrator) NewCharacter(_ context.Context, input *character.NewCharacterInput) (*character.StateOutput, error) {
	state := dnd5e.NewCharacterState()
	if input != nil && strings.TrimSpace(input.Name) != "" {
		state.Name = strings.TrimSpace(input.Name)
	}

	return &character.StateOutput{Character: o.commit(state)}, nil
}

// SetIdentity replaces name, alignment, race, subrace and background
func (o *Orchestrator) SetIdentity(_ context.Context, input *character.SetIdentityInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	alignment := strings.TrimSpace(input.Alignment)
	if alignment == "" {
		alignment = dnd5e.DefaultAlignment
	}
	if !dnd5e.IsAlignment(alignment) {
		return nil, errors.InvalidArgumentf("unknown alignment %q", input.Alignment)
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Name = strings.TrimSpace(input.Name)
		if next.Name == "" {
			next.Name = dnd5e.DefaultName
		}
		next.Alignment = alignment
		next.RaceID = strings.TrimSpace(input.RaceID)
		next.SubraceID = strings.TrimSpace(input.SubraceID)
		next.BackgroundID = strings.TrimSpace(input.BackgroundID)
		return nil
	})
}

// SetLevel changes the level, clamped to 1-20
func (o *Orchestrator) SetLevel(_ context.Context, input *character.SetLevelInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Level = engine.ClampLevel(input.Level)
		return nil
	})
}

// SetAbilityScore changes one score, clamped to 1-30
func (o *Orchestrator) SetAbilityScore(_ context.Context, input *character.SetAbilityScoreInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ability, ok := dnd5e.ParseAbility(input.Ability)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Scores[ability] = engine.ClampScore(input.Score)
		return nil
	})
}

// SetClass changes class. On a real change the subclass is cleared and
// saving throws reset to the new class baseline; choosing the current class
// again keeps both.
func (o *Orchestrator) SetClass(_ context.Context, input *character.SetClassInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	classID := dnd5e.CatalogIndex(input.ClassID)

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		if classID != next.ClassID {
			next.SubclassID = ""
			next.SaveProficiencies = dnd5e.DefaultSaveProficiencies(classID)
		}
		next.ClassID = classID
		if dnd5e.IsSorcerer(classID) && next.Combat.Sorcery == nil {
			next.Combat.Sorcery = &dnd5e.SorceryPoints{}
		}
		return nil
	})
}

// SetSubclass chooses a subclass for the current class
func (o *Orchestrator) SetSubclass(_ context.Context, input *character.SetSubclassInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		subclassID := strings.TrimSpace(input.SubclassID)
		if subclassID != "" && next.ClassID == "" {
			return errors.InvalidArgument("choose a class before a subclass")
		}
		next.SubclassID = subclassID
		return nil
	})
}

// SetSaveProficiencies replaces the saving throw proficiencies. Unknown
// ability names are dropped.
func (o *Orchestrator) SetSaveProficiencies(_ context.Context, input *character.SetSaveProficienciesInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.SaveProficiencies = dnd5e.ParseAbilitySet(input.Abilities)
		return nil
	})
}

// SetSkillProficiencies replaces the skill proficiencies and drops expertise
// in any skill that is no longer proficient
func (o *Orchestrator) SetSkillProficiencies(_ context.Context, input *character.SetSkillProficienciesInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.SkillProficiencies = dnd5e.ParseSkillSet(input.Skills)
		next.Expertise = engine.PruneExpertise(next.SkillProficiencies, next.Expertise)
		return nil
	})
}

// SetExpertise replaces expertise, keeping only proficient skills
func (o *Orchestrator) SetExpertise(_ context.Context, input *character.SetExpertiseInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Expertise = engine.PruneExpertise(next.SkillProficiencies, dnd5e.ParseSkillSet(input.Skills))
		return nil
	})
}

// SetArmor replaces the armor selection. Armor names are canonicalized
// against the catalog; unknown names are stored as Unarmored.
func (o *Orchestrator) SetArmor(ctx context.Context, input *character.SetArmorInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sel := input.Armor
	if armor, ok := dnd5e.LookupArmor(sel.Equipped); ok {
		sel.Equipped = armor.Name
	} else {
		slog.WarnContext(ctx, "unknown armor, using unarmored", "armor", sel.Equipped)
		sel.Equipped = dnd5e.ArmorUnarmored
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Armor = sel
		return nil
	})
}

// SetCombat replaces the free-form combat block
func (o *Orchestrator) SetCombat(_ context.Context, input *character.SetCombatInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Combat = input.Combat
		if input.Combat.Sorcery != nil {
			sp := *input.Combat.Sorcery
			next.Combat.Sorcery = &sp
		}
		return nil
	})
}

// SetSpellbook replaces the spellbook with the normalized form of a raw record
func (o *Orchestrator) SetSpellbook(_ context.Context, input *character.SetSpellbookInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Spellbook = o.engine.NormalizeSpellbook(input.Raw)
		return nil
	})
}

// SetChosenSpells replaces the spell selection, deduplicated and sorted
func (o *Orchestrator) SetChosenSpells(_ context.Context, input *character.SetChosenSpellsInput) (*character.StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.ChosenSpells = uniqueSorted(input.SpellIDs)
		return nil
	})
}

// ApplyRolledScores replaces all six scores with a fresh roll
func (o *Orchestrator) ApplyRolledScores(ctx context.Context, input *character.ApplyRolledScoresInput) (*character.ApplyRolledScoresOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	rolled, err := o.diceService.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{Method: input.Method})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	out, err := o.edit(input.Character, func(next *dnd5e.CharacterState) error {
		next.Scores = dice.ScoresFromRolls(rolled.Rolls)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.ApplyRolledScoresOutput{
		Character: out.Character,
		Rolls:     rolled.Rolls,
	}, nil
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
