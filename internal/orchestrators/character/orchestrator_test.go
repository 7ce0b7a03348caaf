package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external"
	externalmock "github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external/mock"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
	dicemock "github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice/mock"
	characterrepo "github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character"
	characterrepomock "github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character/mock"
	charactersvc "github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/content"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/conversion"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCharRepo       *characterrepomock.MockRepository
	mockExternalClient *externalmock.MockClient
	mockDiceService    *dicemock.MockService
	engine             engine.Engine
	converter          conversion.SnapshotConverter
	orchestrator       *character.Orchestrator
	ctx                context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockExternalClient = externalmock.NewMockClient(s.ctrl)
	s.mockDiceService = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng

	converter, err := conversion.NewSnapshotConverter(&conversion.SnapshotConverterConfig{Engine: eng})
	s.Require().NoError(err)
	s.converter = converter

	s.orchestrator = s.newOrchestrator(nil)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(homebrew *content.Catalog) *character.Orchestrator {
	orchestrator, err := character.New(&character.Config{
		CharacterRepo:  s.mockCharRepo,
		Engine:         s.engine,
		ExternalClient: s.mockExternalClient,
		Converter:      s.converter,
		DiceService:    s.mockDiceService,
		Homebrew:       homebrew,
	})
	s.Require().NoError(err)
	return orchestrator
}

func (s *OrchestratorTestSuite) newCharacter() *dnd5e.CharacterState {
	out, err := s.orchestrator.NewCharacter(s.ctx, &charactersvc.NewCharacterInput{Name: "Vex"})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) TestNew_ValidatesConfig() {
	_, err := character.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(&character.Config{Engine: s.engine})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestNewCharacter() {
	out, err := s.orchestrator.NewCharacter(s.ctx, &charactersvc.NewCharacterInput{})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(dnd5e.DefaultName, c.Name)
	s.Equal(dnd5e.DefaultAlignment, c.Alignment)
	s.Equal(1, c.Level)
	s.Equal(dnd5e.DefaultAbilityScores(), c.Scores)
	s.Equal(2, c.Derived.ProficiencyBonus)
	s.Equal(12, c.Derived.ArmorClass)
	s.Equal(2, c.Derived.Initiative)
	s.Equal(9, c.Derived.HitPointsAtFirst)
	s.Equal(30, c.Derived.Speed)
}

func (s *OrchestratorTestSuite) TestSetIdentity() {
	start := s.newCharacter()

	out, err := s.orchestrator.SetIdentity(s.ctx, &charactersvc.SetIdentityInput{
		Character:    start,
		Name:         "  Vex the Bold ",
		Alignment:    "Chaotic Good",
		RaceID:       "elf",
		SubraceID:    "high-elf",
		BackgroundID: "acolyte",
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal("Vex the Bold", c.Name)
	s.Equal("Chaotic Good", c.Alignment)
	s.Equal("elf", c.RaceID)
	s.Equal("high-elf", c.SubraceID)
	s.Equal("acolyte", c.BackgroundID)

	// the committed state is a new value
	s.Equal("Vex", start.Name)
	s.Empty(start.RaceID)
}

func (s *OrchestratorTestSuite) TestSetIdentity_Invalid() {
	_, err := s.orchestrator.SetIdentity(s.ctx, &charactersvc.SetIdentityInput{
		Character: s.newCharacter(),
		Alignment: "Mostly Harmless",
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetIdentity(s.ctx, &charactersvc.SetIdentityInput{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "character is required")
}

func (s *OrchestratorTestSuite) TestSetLevel() {
	testCases := []struct {
		name      string
		level     int
		wantLevel int
		wantBonus int
	}{
		{name: "below range", level: 0, wantLevel: 1, wantBonus: 2},
		{name: "tier two", level: 5, wantLevel: 5, wantBonus: 3},
		{name: "capstone", level: 20, wantLevel: 20, wantBonus: 6},
		{name: "above range", level: 25, wantLevel: 20, wantBonus: 6},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.SetLevel(s.ctx, &charactersvc.SetLevelInput{
				Character: s.newCharacter(),
				Level:     tc.level,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantLevel, out.Character.Level)
			s.Equal(tc.wantBonus, out.Character.Derived.ProficiencyBonus)
		})
	}
}

func (s *OrchestratorTestSuite) TestSetAbilityScore() {
	out, err := s.orchestrator.SetAbilityScore(s.ctx, &charactersvc.SetAbilityScoreInput{
		Character: s.newCharacter(),
		Ability:   "Dexterity",
		Score:     35,
	})
	s.Require().NoError(err)
	s.Equal(30, out.Character.Scores[dnd5e.AbilityDexterity])
	s.Equal(10, out.Character.Derived.Modifiers[dnd5e.AbilityDexterity])
	s.Equal(10, out.Character.Derived.Initiative)

	out, err = s.orchestrator.SetAbilityScore(s.ctx, &charactersvc.SetAbilityScoreInput{
		Character: out.Character,
		Ability:   "WIS",
		Score:     -4,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Character.Scores[dnd5e.AbilityWisdom])

	_, err = s.orchestrator.SetAbilityScore(s.ctx, &charactersvc.SetAbilityScoreInput{
		Character: s.newCharacter(),
		Ability:   "Luck",
		Score:     12,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetClass() {
	start := s.newCharacter()
	start.ClassID = dnd5e.ClassFighter
	start.SubclassID = "champion"

	out, err := s.orchestrator.SetClass(s.ctx, &charactersvc.SetClassInput{
		Character: start,
		ClassID:   "Wizard",
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(dnd5e.ClassWizard, c.ClassID)
	s.Empty(c.SubclassID)
	s.Equal([]string{"Intelligence", "Wisdom"}, c.SaveProficiencies.Names())
	s.Nil(c.Combat.Sorcery)

	// Int 12 (+1) + proficiency 2
	s.Equal(3, c.Derived.SavingThrows[dnd5e.AbilityIntelligence])
	s.Equal(-1, c.Derived.SavingThrows[dnd5e.AbilityCharisma])

	out, err = s.orchestrator.SetClass(s.ctx, &charactersvc.SetClassInput{
		Character: c,
		ClassID:   dnd5e.ClassSorcerer,
	})
	s.Require().NoError(err)
	s.Equal([]string{"Constitution", "Charisma"}, out.Character.SaveProficiencies.Names())
	s.NotNil(out.Character.Combat.Sorcery)
}

func (s *OrchestratorTestSuite) TestSetClass_SameClassKeepsChoices() {
	start := s.newCharacter()
	start.ClassID = dnd5e.ClassWizard
	start.SubclassID = "evocation"
	start.SaveProficiencies = dnd5e.ParseAbilitySet([]string{"Dexterity", "Wisdom"})

	out, err := s.orchestrator.SetClass(s.ctx, &charactersvc.SetClassInput{
		Character: start,
		ClassID:   "Wizard",
	})
	s.Require().NoError(err)

	s.Equal("evocation", out.Character.SubclassID)
	s.Equal([]string{"Dexterity", "Wisdom"}, out.Character.SaveProficiencies.Names())
}

func (s *OrchestratorTestSuite) TestSetSubclass() {
	_, err := s.orchestrator.SetSubclass(s.ctx, &charactersvc.SetSubclassInput{
		Character:  s.newCharacter(),
		SubclassID: "evocation",
	})
	s.True(errors.IsInvalidArgument(err))

	start := s.newCharacter()
	start.ClassID = dnd5e.ClassWizard
	out, err := s.orchestrator.SetSubclass(s.ctx, &charactersvc.SetSubclassInput{
		Character:  start,
		SubclassID: "evocation",
	})
	s.Require().NoError(err)
	s.Equal("evocation", out.Character.SubclassID)
}

func (s *OrchestratorTestSuite) TestSetSaveProficiencies() {
	out, err := s.orchestrator.SetSaveProficiencies(s.ctx, &charactersvc.SetSaveProficienciesInput{
		Character: s.newCharacter(),
		Abilities: []string{"Wisdom", "Strength", "Nonsense", "Wisdom"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Strength", "Wisdom"}, out.Character.SaveProficiencies.Names())
}

func (s *OrchestratorTestSuite) TestExpertiseStaysWithinProficiencies() {
	out, err := s.orchestrator.SetSkillProficiencies(s.ctx, &charactersvc.SetSkillProficienciesInput{
		Character: s.newCharacter(),
		Skills:    []string{"Stealth", "Perception", "Flying"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Perception", "Stealth"}, out.Character.SkillProficiencies.Names())

	out, err = s.orchestrator.SetExpertise(s.ctx, &charactersvc.SetExpertiseInput{
		Character: out.Character,
		Skills:    []string{"Stealth", "Arcana"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Stealth"}, out.Character.Expertise.Names())

	// Dex 14 (+2) + 2 x proficiency 2
	s.Equal(6, out.Character.Derived.Skills[dnd5e.SkillStealth])

	out, err = s.orchestrator.SetSkillProficiencies(s.ctx, &charactersvc.SetSkillProficienciesInput{
		Character: out.Character,
		Skills:    []string{"Perception"},
	})
	s.Require().NoError(err)
	s.Empty(out.Character.Expertise)
	s.Equal(2, out.Character.Derived.Skills[dnd5e.SkillStealth])
	for _, skill := range out.Character.Expertise {
		s.True(out.Character.SkillProficiencies.Contains(skill))
	}
}

func (s *OrchestratorTestSuite) TestSetArmor() {
	testCases := []struct {
		name         string
		armor        dnd5e.ArmorSelection
		wantEquipped string
		wantAC       int
	}{
		{
			name:         "chain mail and shield",
			armor:        dnd5e.ArmorSelection{Equipped: "chain mail", Shield: true},
			wantEquipped: dnd5e.ArmorChainMail,
			wantAC:       18,
		},
		{
			name:         "half plate caps dex",
			armor:        dnd5e.ArmorSelection{Equipped: dnd5e.ArmorHalfPlate, MiscBonus: 1},
			wantEquipped: dnd5e.ArmorHalfPlate,
			wantAC:       18,
		},
		{
			name:         "unknown armor falls back",
			armor:        dnd5e.ArmorSelection{Equipped: "Mithral Coat"},
			wantEquipped: dnd5e.ArmorUnarmored,
			wantAC:       12,
		},
		{
			name:         "manual override",
			armor:        dnd5e.ArmorSelection{Equipped: dnd5e.ArmorPlate, ManualOverride: true, ManualAC: 21},
			wantEquipped: dnd5e.ArmorPlate,
			wantAC:       21,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.SetArmor(s.ctx, &charactersvc.SetArmorInput{
				Character: s.newCharacter(),
				Armor:     tc.armor,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantEquipped, out.Character.Armor.Equipped)
			s.Equal(tc.wantAC, out.Character.Derived.ArmorClass)
		})
	}
}

func (s *OrchestratorTestSuite) TestSetCombat() {
	sorcery := &dnd5e.SorceryPoints{Available: 3}
	out, err := s.orchestrator.SetCombat(s.ctx, &charactersvc.SetCombatInput{
		Character: s.newCharacter(),
		Combat:    dnd5e.Combat{HPMax: 9, HPCurrent: 7, Actions: "Firebolt", Sorcery: sorcery},
	})
	s.Require().NoError(err)
	s.Equal(7, out.Character.Combat.HPCurrent)
	s.Equal("Firebolt", out.Character.Combat.Actions)

	sorcery.Spent = 2
	s.Equal(0, out.Character.Combat.Sorcery.Spent)
}

func (s *OrchestratorTestSuite) TestSetSpellbook() {
	out, err := s.orchestrator.SetSpellbook(s.ctx, &charactersvc.SetSpellbookInput{
		Character: s.newCharacter(),
		Raw: map[string]any{
			"slots":     map[string]any{"1": float64(4), "2": "3", "12": 1},
			"slotsUsed": map[string]any{"1": 1},
			"prepared":  map[string]any{"0": []any{"fire-bolt"}, "1": "magic-missile"},
		},
	})
	s.Require().NoError(err)

	sb := out.Character.Spellbook
	s.Equal(4, sb.Slots[1])
	s.Equal(3, sb.Slots[2])
	s.Equal(1, sb.SlotsUsed[1])
	s.Equal([]string{"fire-bolt"}, sb.Prepared[0])
	s.Empty(sb.Prepared[1])
}

func (s *OrchestratorTestSuite) TestSetChosenSpells() {
	out, err := s.orchestrator.SetChosenSpells(s.ctx, &charactersvc.SetChosenSpellsInput{
		Character: s.newCharacter(),
		SpellIDs:  []string{"shield", "magic-missile", "shield", " "},
	})
	s.Require().NoError(err)
	s.Equal([]string{"magic-missile", "shield"}, out.Character.ChosenSpells)
}

func (s *OrchestratorTestSuite) TestApplyRolledScores() {
	rolls := []*dice.DiceRoll{
		{Total: 16}, {Total: 14}, {Total: 15}, {Total: 9}, {Total: 12}, {Total: 7},
	}
	s.mockDiceService.EXPECT().
		RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{Method: dice.MethodClassic}).
		Return(&dice.RollAbilityScoresOutput{Method: dice.MethodClassic, Rolls: rolls}, nil)

	out, err := s.orchestrator.ApplyRolledScores(s.ctx, &charactersvc.ApplyRolledScoresInput{
		Character: s.newCharacter(),
		Method:    dice.MethodClassic,
	})
	s.Require().NoError(err)
	s.Equal(dnd5e.AbilityScores{16, 14, 15, 9, 12, 7}, out.Character.Scores)
	s.Equal(rolls, out.Rolls)
	s.Equal(10, out.Character.Derived.HitPointsAtFirst)
}

func (s *OrchestratorTestSuite) TestApplyRolledScores_DiceError() {
	s.mockDiceService.EXPECT().
		RollAbilityScores(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("unsupported rolling method: point_buy"))

	_, err := s.orchestrator.ApplyRolledScores(s.ctx, &charactersvc.ApplyRolledScoresInput{
		Character: s.newCharacter(),
		Method:    "point_buy",
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "failed to roll ability scores")
}

func (s *OrchestratorTestSuite) elfAcolyte() *dnd5e.CharacterState {
	c := s.newCharacter()
	c.Level = 3
	c.RaceID = "elf"
	c.SubraceID = "high-elf"
	c.BackgroundID = "acolyte"
	c.ClassID = dnd5e.ClassWizard
	c.SubclassID = "evocation"
	c.SkillProficiencies = dnd5e.ParseSkillSet([]string{"Stealth"})
	c.Expertise = dnd5e.ParseSkillSet([]string{"Stealth"})
	return c
}

func (s *OrchestratorTestSuite) expectElfLookups() {
	s.mockExternalClient.EXPECT().
		GetRace(gomock.Any(), "elf").
		Return(external.Present(&dnd5e.RaceData{
			ID:     "elf",
			Name:   "Elf",
			Traits: []dnd5e.ReferenceItem{{ID: "keen-senses", Name: "Keen Senses"}, {ID: "trance", Name: "Trance"}},
		}))
	s.mockExternalClient.EXPECT().
		GetTrait(gomock.Any(), "trance").
		Return(external.Present(&dnd5e.TraitData{ID: "trance", Name: "Trance"}))
	s.mockExternalClient.EXPECT().
		GetSubrace(gomock.Any(), "high-elf").
		Return(external.Present(&dnd5e.SubraceData{
			ID:            "high-elf",
			Proficiencies: []string{"Longswords", "Shortbows"},
			Traits:        []dnd5e.ReferenceItem{{ID: "extra-language", Name: "Extra Language"}},
		}))
	s.mockExternalClient.EXPECT().
		GetTrait(gomock.Any(), "extra-language").
		Return(external.Empty[*dnd5e.TraitData]())
	s.mockExternalClient.EXPECT().
		GetBackground(gomock.Any(), "acolyte").
		Return(external.Present(&dnd5e.BackgroundData{
			ID:            "acolyte",
			Proficiencies: []string{"Skill: Insight", "Skill: Religion"},
		}))
}

func (s *OrchestratorTestSuite) TestResolveAutoProficiencies() {
	s.expectElfLookups()
	s.mockExternalClient.EXPECT().
		GetTrait(gomock.Any(), "keen-senses").
		Return(external.Present(&dnd5e.TraitData{
			ID:            "keen-senses",
			Proficiencies: []string{"Skill: Perception"},
		}))
	s.mockExternalClient.EXPECT().
		GetSubclass(gomock.Any(), "evocation").
		Return(external.Present(&dnd5e.SubclassData{
			ID: "evocation",
			Features: []dnd5e.FeatureData{
				{ID: "evocation-savant", Level: 2, Proficiencies: []string{"Skill: Arcana"}},
				{ID: "overchannel", Level: 14, Proficiencies: []string{"Skill: History"}},
			},
		}))

	start := s.elfAcolyte()
	out, err := s.orchestrator.ResolveAutoProficiencies(s.ctx, &charactersvc.ResolveAutoProficienciesInput{
		Character: start,
	})
	s.Require().NoError(err)

	s.Equal([]string{"Arcana", "Insight", "Perception", "Religion", "Stealth"}, out.Character.SkillProficiencies.Names())
	s.Equal([]string{"Stealth"}, out.Character.Expertise.Names())
	s.Empty(out.Unavailable)
	s.Equal([]string{"Skill: Perception"}, out.Grants.RaceTraits)
	s.Equal([]string{"Longswords", "Shortbows"}, out.Grants.SubraceTraits)

	// Wis 10 + proficiency 2
	s.Equal(12, out.Character.Derived.PassivePerception)
	s.Equal([]string{"Stealth"}, start.SkillProficiencies.Names())
}

func (s *OrchestratorTestSuite) TestResolveAutoProficiencies_Unavailable() {
	s.expectElfLookups()
	s.mockExternalClient.EXPECT().
		GetTrait(gomock.Any(), "keen-senses").
		Return(external.Unavailable[*dnd5e.TraitData](errors.Unavailable("timeout")))
	s.mockExternalClient.EXPECT().
		GetSubclass(gomock.Any(), "evocation").
		Return(external.Unavailable[*dnd5e.SubclassData](errors.Unavailable("timeout")))

	out, err := s.orchestrator.ResolveAutoProficiencies(s.ctx, &charactersvc.ResolveAutoProficienciesInput{
		Character: s.elfAcolyte(),
	})
	s.Require().NoError(err)

	s.Equal([]string{"Insight", "Religion", "Stealth"}, out.Character.SkillProficiencies.Names())
	s.ElementsMatch([]string{"trait keen-senses", "subclass evocation"}, out.Unavailable)
}

func (s *OrchestratorTestSuite) TestResolveAutoProficiencies_Homebrew() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Traits: []content.Entry{
			{ID: "keen-senses", Name: "Keen Senses", Proficiencies: []string{"Skill: Survival"}},
		},
		SubclassFeatures: []content.Entry{
			{Name: "Storm Sight", Subclass: "evocation", Level: 3, Proficiencies: []string{"Skill: Nature"}},
			{Name: "Storm Soul", Subclass: "evocation", Level: 6, Proficiencies: []string{"Skill: Medicine"}},
		},
	})

	s.expectElfLookups()
	s.mockExternalClient.EXPECT().
		GetSubclass(gomock.Any(), "evocation").
		Return(external.Empty[*dnd5e.SubclassData]())

	out, err := orchestrator.ResolveAutoProficiencies(s.ctx, &charactersvc.ResolveAutoProficienciesInput{
		Character: s.elfAcolyte(),
	})
	s.Require().NoError(err)

	s.Equal([]string{"Insight", "Nature", "Religion", "Stealth", "Survival"}, out.Character.SkillProficiencies.Names())
	s.Empty(out.Unavailable)
}

func (s *OrchestratorTestSuite) TestResolveAutoProficiencies_NoSources() {
	out, err := s.orchestrator.ResolveAutoProficiencies(s.ctx, &charactersvc.ResolveAutoProficienciesInput{
		Character: s.newCharacter(),
	})
	s.Require().NoError(err)
	s.Empty(out.Character.SkillProficiencies)
	s.Empty(out.Grants.All())
}

func (s *OrchestratorTestSuite) TestListSubclasses() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Subclasses: []content.Entry{
			{ID: "evocation", Name: "School of Evocation (2024)", Class: "Wizard"},
			{Name: "Chronurgy", Class: "wizard"},
			{Name: "Path of Ash", Class: "barbarian"},
		},
	})

	s.mockExternalClient.EXPECT().
		ListSubclasses(s.ctx, "wizard").
		Return(external.Present([]dnd5e.ReferenceItem{
			{ID: "evocation", Name: "Evocation"},
			{ID: "abjuration", Name: "Abjuration"},
		}))

	out, err := orchestrator.ListSubclasses(s.ctx, &charactersvc.ListSubclassesInput{ClassID: "Wizard"})
	s.Require().NoError(err)
	s.False(out.Unavailable)
	s.Equal([]dnd5e.ReferenceItem{
		{ID: "evocation", Name: "School of Evocation (2024)"},
		{ID: "abjuration", Name: "Abjuration"},
		{ID: "chronurgy-homebrew", Name: "Chronurgy"},
	}, out.Subclasses)
}

func (s *OrchestratorTestSuite) TestListSubclasses_Unavailable() {
	s.mockExternalClient.EXPECT().
		ListSubclasses(s.ctx, "wizard").
		Return(external.Unavailable[[]dnd5e.ReferenceItem](errors.Unavailable("down")))

	out, err := s.orchestrator.ListSubclasses(s.ctx, &charactersvc.ListSubclassesInput{ClassID: "wizard"})
	s.Require().NoError(err)
	s.True(out.Unavailable)
	s.Empty(out.Subclasses)

	_, err = s.orchestrator.ListSubclasses(s.ctx, &charactersvc.ListSubclassesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSpellOptions() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Spells: []content.Entry{
			{Name: "Ember Lance", Class: "wizard"},
			{ID: "storm-ward", Name: "Storm Ward", Subclass: "evocation"},
			{Name: "Holy Nova", Class: "cleric"},
		},
	})

	s.mockExternalClient.EXPECT().
		ListClassSpells(s.ctx, "wizard").
		Return(external.Present([]dnd5e.ReferenceItem{
			{ID: "shield", Name: "Shield"},
			{ID: "fire-bolt", Name: "Fire Bolt"},
		}))
	s.mockExternalClient.EXPECT().
		ListSubclassSpells(s.ctx, "evocation").
		Return(external.Present([]dnd5e.ReferenceItem{
			{ID: "fire-bolt", Name: "Fire Bolt"},
		}))

	out, err := orchestrator.ListSpellOptions(s.ctx, &charactersvc.ListSpellOptionsInput{
		ClassID:    "wizard",
		SubclassID: "evocation",
	})
	s.Require().NoError(err)
	s.False(out.Unavailable)
	s.Equal([]dnd5e.ReferenceItem{
		{ID: "ember-lance-homebrew", Name: "Ember Lance"},
		{ID: "fire-bolt", Name: "Fire Bolt"},
		{ID: "shield", Name: "Shield"},
		{ID: "storm-ward", Name: "Storm Ward"},
	}, out.Spells)
}

func (s *OrchestratorTestSuite) TestListSpellOptions_ClassOnly() {
	s.mockExternalClient.EXPECT().
		ListClassSpells(s.ctx, "bard").
		Return(external.Unavailable[[]dnd5e.ReferenceItem](errors.Unavailable("down")))

	out, err := s.orchestrator.ListSpellOptions(s.ctx, &charactersvc.ListSpellOptionsInput{ClassID: "bard"})
	s.Require().NoError(err)
	s.True(out.Unavailable)
	s.Empty(out.Spells)
}

func (s *OrchestratorTestSuite) TestListSubclasses_HomebrewReplacesReference() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Subclasses: []content.Entry{
			{ID: "abjuration", Name: "Abjuration (House)"},
			{ID: "oath-of-ash", Name: "Oath of Ash", Class: "paladin"},
		},
	})

	s.mockExternalClient.EXPECT().
		ListSubclasses(s.ctx, "wizard").
		Return(external.Present([]dnd5e.ReferenceItem{
			{ID: "evocation", Name: "Evocation"},
			{ID: "abjuration", Name: "Abjuration"},
		}))

	out, err := orchestrator.ListSubclasses(s.ctx, &charactersvc.ListSubclassesInput{ClassID: "wizard"})
	s.Require().NoError(err)
	s.Equal([]dnd5e.ReferenceItem{
		{ID: "evocation", Name: "Evocation"},
		{ID: "abjuration", Name: "Abjuration (House)"},
	}, out.Subclasses)
}

func (s *OrchestratorTestSuite) TestListSpellOptions_HomebrewReplacesReference() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Spells: []content.Entry{
			{ID: "shield", Name: "Shield (House)", Level: 2},
			{ID: "holy-nova", Name: "Holy Nova", Class: "cleric"},
		},
	})

	s.mockExternalClient.EXPECT().
		ListClassSpells(s.ctx, "wizard").
		Return(external.Present([]dnd5e.ReferenceItem{
			{ID: "shield", Name: "Shield"},
			{ID: "fire-bolt", Name: "Fire Bolt"},
		}))

	out, err := orchestrator.ListSpellOptions(s.ctx, &charactersvc.ListSpellOptionsInput{ClassID: "wizard"})
	s.Require().NoError(err)
	s.Equal([]dnd5e.ReferenceItem{
		{ID: "fire-bolt", Name: "Fire Bolt"},
		{ID: "shield", Name: "Shield (House)"},
	}, out.Spells)
}

func (s *OrchestratorTestSuite) TestListCatalog() {
	s.mockExternalClient.EXPECT().
		ListRaces(s.ctx).
		Return(external.Present([]dnd5e.ReferenceItem{{ID: "elf", Name: "Elf"}}))
	s.mockExternalClient.EXPECT().
		ListClasses(s.ctx).
		Return(external.Present([]dnd5e.ReferenceItem{{ID: "wizard", Name: "Wizard"}}))
	s.mockExternalClient.EXPECT().
		ListBackgrounds(s.ctx).
		Return(external.Unavailable[[]dnd5e.ReferenceItem](errors.Unavailable("down")))

	races, err := s.orchestrator.ListCatalog(s.ctx, &charactersvc.ListCatalogInput{Kind: charactersvc.CatalogRaces})
	s.Require().NoError(err)
	s.Equal([]dnd5e.ReferenceItem{{ID: "elf", Name: "Elf"}}, races.Items)
	s.False(races.Unavailable)

	classes, err := s.orchestrator.ListCatalog(s.ctx, &charactersvc.ListCatalogInput{Kind: " Classes "})
	s.Require().NoError(err)
	s.Equal([]dnd5e.ReferenceItem{{ID: "wizard", Name: "Wizard"}}, classes.Items)

	backgrounds, err := s.orchestrator.ListCatalog(s.ctx, &charactersvc.ListCatalogInput{Kind: charactersvc.CatalogBackgrounds})
	s.Require().NoError(err)
	s.True(backgrounds.Unavailable)
	s.NotNil(backgrounds.Items)
	s.Empty(backgrounds.Items)
}

func (s *OrchestratorTestSuite) TestListCatalog_Invalid() {
	_, err := s.orchestrator.ListCatalog(s.ctx, &charactersvc.ListCatalogInput{Kind: "feats"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListCatalog(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetClassDetail() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Subclasses: []content.Entry{
			{ID: "evocation", Name: "Evocation (House)", Class: "wizard"},
			{Name: "Chronurgy", Class: "Wizard"},
			{Name: "Path of Ash", Class: "barbarian"},
		},
	})

	reference := &dnd5e.ClassData{
		ID:           "wizard",
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []string{"Intelligence", "Wisdom"},
		Subclasses:   []dnd5e.ReferenceItem{{ID: "evocation", Name: "Evocation"}},
	}
	s.mockExternalClient.EXPECT().
		GetClass(s.ctx, "wizard").
		Return(external.Present(reference))

	out, err := orchestrator.GetClassDetail(s.ctx, &charactersvc.GetClassDetailInput{ClassID: "Wizard"})
	s.Require().NoError(err)
	s.Equal(6, out.Class.HitDie)
	s.Equal([]string{"Intelligence", "Wisdom"}, out.Class.SavingThrows)
	s.Equal([]dnd5e.ReferenceItem{
		{ID: "evocation", Name: "Evocation (House)"},
		{ID: "chronurgy-homebrew", Name: "Chronurgy"},
	}, out.Class.Subclasses)
	// the looked-up value is not modified
	s.Equal([]dnd5e.ReferenceItem{{ID: "evocation", Name: "Evocation"}}, reference.Subclasses)
}

func (s *OrchestratorTestSuite) TestGetClassDetail_Errors() {
	s.mockExternalClient.EXPECT().
		GetClass(s.ctx, "artificer").
		Return(external.Empty[*dnd5e.ClassData]())
	s.mockExternalClient.EXPECT().
		GetClass(s.ctx, "bard").
		Return(external.Unavailable[*dnd5e.ClassData](errors.Unavailable("down")))

	_, err := s.orchestrator.GetClassDetail(s.ctx, &charactersvc.GetClassDetailInput{ClassID: "artificer"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetClassDetail(s.ctx, &charactersvc.GetClassDetailInput{ClassID: "bard"})
	s.True(errors.IsUnavailable(err))

	_, err = s.orchestrator.GetClassDetail(s.ctx, &charactersvc.GetClassDetailInput{ClassID: " "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetFeatureDetail() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		SubclassFeatures: []content.Entry{
			{ID: "ash-sight", Name: "Ash Sight", Subclass: "path-of-ash", Level: 3, Proficiencies: []string{"Skill: Perception"}},
		},
	})

	homebrew, err := orchestrator.GetFeatureDetail(s.ctx, &charactersvc.GetFeatureDetailInput{FeatureID: "ash-sight"})
	s.Require().NoError(err)
	s.True(homebrew.Homebrew)
	s.Equal("Ash Sight", homebrew.Feature.Name)
	s.Equal(3, homebrew.Feature.Level)
	s.Equal([]string{"Skill: Perception"}, homebrew.Feature.Proficiencies)

	s.mockExternalClient.EXPECT().
		GetFeature(s.ctx, "second-wind").
		Return(external.Present(&dnd5e.FeatureData{ID: "second-wind", Name: "Second Wind", Level: 1}))

	reference, err := orchestrator.GetFeatureDetail(s.ctx, &charactersvc.GetFeatureDetailInput{FeatureID: "second-wind"})
	s.Require().NoError(err)
	s.False(reference.Homebrew)
	s.Equal("Second Wind", reference.Feature.Name)
}

func (s *OrchestratorTestSuite) TestGetFeatureDetail_NotFound() {
	s.mockExternalClient.EXPECT().
		GetFeature(s.ctx, "made-up").
		Return(external.Empty[*dnd5e.FeatureData]())

	_, err := s.orchestrator.GetFeatureDetail(s.ctx, &charactersvc.GetFeatureDetailInput{FeatureID: "made-up"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetSpellDetail() {
	orchestrator := s.newOrchestrator(&content.Catalog{
		Spells: []content.Entry{
			{ID: "shield", Name: "Shield (House)", Level: 2, Description: "A sturdier shield."},
		},
	})

	homebrew, err := orchestrator.GetSpellDetail(s.ctx, &charactersvc.GetSpellDetailInput{SpellID: "shield"})
	s.Require().NoError(err)
	s.True(homebrew.Homebrew)
	s.Equal("Shield (House)", homebrew.Spell.Name)
	s.Equal(2, homebrew.Spell.Level)

	s.mockExternalClient.EXPECT().
		GetSpell(s.ctx, "fire-bolt").
		Return(external.Present(&dnd5e.SpellData{ID: "fire-bolt", Name: "Fire Bolt", School: "Evocation"}))

	reference, err := orchestrator.GetSpellDetail(s.ctx, &charactersvc.GetSpellDetailInput{SpellID: "fire-bolt"})
	s.Require().NoError(err)
	s.False(reference.Homebrew)
	s.Equal("Evocation", reference.Spell.School)
}

func (s *OrchestratorTestSuite) TestGetSpellDetail_Errors() {
	s.mockExternalClient.EXPECT().
		GetSpell(s.ctx, "wish-upon-a-star").
		Return(external.Empty[*dnd5e.SpellData]())
	s.mockExternalClient.EXPECT().
		GetSpell(s.ctx, "fireball").
		Return(external.Unavailable[*dnd5e.SpellData](nil))

	_, err := s.orchestrator.GetSpellDetail(s.ctx, &charactersvc.GetSpellDetailInput{SpellID: "wish-upon-a-star"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetSpellDetail(s.ctx, &charactersvc.GetSpellDetailInput{SpellID: "fireball"})
	s.True(errors.IsUnavailable(err))

	_, err = s.orchestrator.GetSpellDetail(s.ctx, &charactersvc.GetSpellDetailInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestExportImportRoundTrip() {
	c := s.elfAcolyte()
	c.Name = "Vex the Bold"
	c.Armor = dnd5e.ArmorSelection{Equipped: dnd5e.ArmorStuddedLeather, Shield: true}
	c.Spellbook.Slots[1] = 2
	c.Spellbook.Prepared[1] = []string{"shield"}
	c.ChosenSpells = []string{"shield"}
	c.Derived = s.engine.Derive(c)

	exported, err := s.orchestrator.Export(s.ctx, &charactersvc.ExportInput{Character: c})
	s.Require().NoError(err)
	s.Equal("vex_the_bold_dnd55e.json", exported.FileName)
	s.Equal(16, exported.Snapshot.Combat.AC)

	imported, err := s.orchestrator.Import(s.ctx, &charactersvc.ImportInput{Data: exported.Data})
	s.Require().NoError(err)

	got := imported.Character
	s.Equal(c.Name, got.Name)
	s.Equal(c.Scores, got.Scores)
	s.Equal(c.SkillProficiencies, got.SkillProficiencies)
	s.Equal(c.Expertise, got.Expertise)
	s.Equal(c.Armor, got.Armor)
	s.Equal(c.Spellbook, got.Spellbook)
	s.Equal(c.Derived, got.Derived)
}

func (s *OrchestratorTestSuite) TestImport_Invalid() {
	_, err := s.orchestrator.Import(s.ctx, &charactersvc.ImportInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Import(s.ctx, &charactersvc.ImportInput{Data: []byte(`[1, 2]`)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSave() {
	savedAt := time.Date(2025, 7, 18, 9, 30, 0, 0, time.UTC)
	c := s.newCharacter()
	c.Level = 5

	s.mockCharRepo.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpsertInput) (*characterrepo.UpsertOutput, error) {
			s.Equal("Vex", input.Entity.GetID())
			s.Equal(dnd5e.EntityTypeCharacter, input.Entity.GetType())
			s.Equal(5, input.Snapshot.Level)
			// derived values are recomputed before saving
			s.Equal(3, input.Snapshot.ProficiencyBonus)
			return &characterrepo.UpsertOutput{
				Record:  &characterrepo.Record{ID: "char_1", Name: input.Entity.GetID(), SavedAt: savedAt, Snapshot: input.Snapshot},
				Created: true,
			}, nil
		})

	out, err := s.orchestrator.Save(s.ctx, &charactersvc.SaveInput{Character: c})
	s.Require().NoError(err)
	s.Equal("char_1", out.ID)
	s.Equal("Vex", out.Name)
	s.Equal(savedAt, out.SavedAt)
	s.True(out.Created)
}

func (s *OrchestratorTestSuite) TestSave_StoreError() {
	s.mockCharRepo.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.Save(s.ctx, &charactersvc.SaveInput{Character: s.newCharacter()})
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to save character")
}

func (s *OrchestratorTestSuite) TestLoad() {
	snap := testutils.CreateTestSnapshot("")
	snap.ProficiencyBonus = 99

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{Name: testutils.TestCharacterName}).
		Return(&characterrepo.GetOutput{
			Record: &characterrepo.Record{ID: "char_1", Name: testutils.TestCharacterName, Snapshot: snap},
		}, nil)

	out, err := s.orchestrator.Load(s.ctx, &charactersvc.LoadInput{Name: testutils.TestCharacterName})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(testutils.TestCharacterName, c.Name)
	s.Equal(3, c.Level)
	s.Equal(2, c.Derived.ProficiencyBonus)
	s.Equal(18, c.Derived.ArmorClass)
}

func (s *OrchestratorTestSuite) TestLoad_NotFound() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{Name: "Nobody"}).
		Return(nil, errors.NotFound("character Nobody not found"))

	_, err := s.orchestrator.Load(s.ctx, &charactersvc.LoadInput{Name: "Nobody"})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to load character")

	_, err = s.orchestrator.Load(s.ctx, &charactersvc.LoadInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestList() {
	savedAt := time.Date(2025, 7, 18, 9, 30, 0, 0, time.UTC)
	s.mockCharRepo.EXPECT().
		GetAll(s.ctx, characterrepo.GetAllInput{}).
		Return(&characterrepo.GetAllOutput{Records: []*characterrepo.Record{
			{ID: "char_1", Name: "Aria", SavedAt: savedAt, Snapshot: testutils.CreateTestSnapshot("Aria")},
			{ID: "char_2", Name: "Zed", SavedAt: savedAt},
		}}, nil)

	out, err := s.orchestrator.List(s.ctx, &charactersvc.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal(&charactersvc.Summary{ID: "char_1", Name: "Aria", Level: 3, Class: "fighter", SavedAt: savedAt}, out.Characters[0])
	s.Equal("Zed", out.Characters[1].Name)
	s.Zero(out.Characters[1].Level)
}

func (s *OrchestratorTestSuite) TestDelete() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{Name: "Vex"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.Delete(s.ctx, &charactersvc.DeleteInput{Name: "Vex"})
	s.NoError(err)

	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{Name: "Vex"}).
		Return(nil, errors.NotFound("character Vex not found"))

	_, err = s.orchestrator.Delete(s.ctx, &charactersvc.DeleteInput{Name: "Vex"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCheckStore() {
	s.mockCharRepo.EXPECT().
		Check(s.ctx, characterrepo.CheckInput{Repair: true}).
		Return(&characterrepo.CheckOutput{
			Checked:   3,
			Corrupted: []string{"Broken"},
			Dangling:  []string{"Ghost"},
			Repaired:  true,
		}, nil)

	out, err := s.orchestrator.CheckStore(s.ctx, &charactersvc.CheckStoreInput{Repair: true})
	s.Require().NoError(err)
	s.Equal(3, out.Checked)
	s.Equal([]string{"Broken"}, out.Corrupted)
	s.Equal([]string{"Ghost"}, out.Dangling)
	s.Empty(out.Unindexed)
	s.True(out.Repaired)

	s.mockCharRepo.EXPECT().
		Check(s.ctx, characterrepo.CheckInput{}).
		Return(nil, errors.Unavailable("redis down"))

	_, err = s.orchestrator.CheckStore(s.ctx, nil)
	s.True(errors.IsUnavailable(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
