package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

func wizard() *dnd5e.CharacterState {
	state := dnd5e.NewCharacterState()
	state.Name = "Vex"
	state.ClassID = dnd5e.ClassWizard
	state.Level = 5
	state.Scores = dnd5e.AbilityScores{8, 16, 14, 17, 14, 10}
	state.SaveProficiencies = dnd5e.DefaultSaveProficiencies(dnd5e.ClassWizard)
	state.SkillProficiencies = dnd5e.NewSkillSet(dnd5e.SkillArcana, dnd5e.SkillPerception)
	state.Expertise = dnd5e.NewSkillSet(dnd5e.SkillPerception)
	return state
}

func TestDerive(t *testing.T) {
	d := engine.Derive(wizard())

	assert.Equal(t, 3, d.ProficiencyBonus)
	assert.Equal(t, [dnd5e.AbilityCount]int{-1, 3, 2, 3, 2, 0}, d.Modifiers)
	assert.Equal(t, [dnd5e.AbilityCount]int{-1, 3, 2, 6, 5, 0}, d.SavingThrows)
	assert.Equal(t, 6, d.Skills[dnd5e.SkillArcana])
	assert.Equal(t, 8, d.Skills[dnd5e.SkillPerception])
	assert.Equal(t, 3, d.Skills[dnd5e.SkillStealth])
	assert.Equal(t, 13, d.ArmorClass)
	assert.Equal(t, 3, d.Initiative)
	assert.Equal(t, 15, d.PassivePerception)
	assert.Equal(t, 10, d.HitPointsAtFirst)
	assert.Equal(t, dnd5e.DefaultSpeed, d.Speed)
}

func TestDeriveManualArmorOverride(t *testing.T) {
	state := wizard()
	state.Armor = dnd5e.ArmorSelection{Equipped: dnd5e.ArmorPlate, ManualOverride: true, ManualAC: 12}

	assert.Equal(t, 12, engine.Derive(state).ArmorClass)

	state.Armor.ManualOverride = false
	assert.Equal(t, 18, engine.Derive(state).ArmorClass)
}

func TestDeriveIgnoresStaleDerived(t *testing.T) {
	state := wizard()
	state.Derived = dnd5e.DerivedStats{ArmorClass: 99, ProficiencyBonus: 9}

	d := engine.Derive(state)
	assert.Equal(t, 13, d.ArmorClass)
	assert.Equal(t, 3, d.ProficiencyBonus)
}

func TestDeriveNil(t *testing.T) {
	assert.Equal(t, dnd5e.DerivedStats{}, engine.Derive(nil))
	assert.Nil(t, engine.Rederive(nil))
}

func TestRederive(t *testing.T) {
	state := wizard()
	out := engine.Rederive(state)

	require.NotSame(t, state, out)
	assert.Zero(t, state.Derived.ProficiencyBonus, "input must not be modified")
	assert.Equal(t, engine.Derive(state), out.Derived)
}

func TestEngine(t *testing.T) {
	e, err := engine.New(&engine.Config{})
	require.NoError(t, err)

	assert.Equal(t, engine.Derive(wizard()), e.Derive(wizard()))
	assert.Equal(t, 4, e.CalculateProficiencyBonus(9))
	assert.Equal(t, -2, e.CalculateAbilityModifier(7))
	assert.Equal(t, dnd5e.NewSpellbookState(), e.NormalizeSpellbook(nil))
	assert.Equal(t, []string{"Stealth"}, e.AggregateSkillProficiencies(nil, []string{"Stealth"}).Names())
}
