package engine

import "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"

// Derive rebuilds every derived value from the raw fields of state. The
// previous state.Derived is ignored.
func Derive(state *dnd5e.CharacterState) dnd5e.DerivedStats {
	if state == nil {
		return dnd5e.DerivedStats{}
	}

	pb := ProficiencyBonus(state.Level)
	d := dnd5e.DerivedStats{
		ProficiencyBonus:  pb,
		ArmorClass:        SelectionArmorClass(state.Scores, state.Armor),
		Initiative:        Initiative(state.Scores),
		PassivePerception: PassivePerception(state.Scores, pb, state.SkillProficiencies),
		HitPointsAtFirst:  HitPointsAtFirst(state.Scores),
		Speed:             dnd5e.DefaultSpeed,
	}

	for _, a := range dnd5e.AllAbilities() {
		d.Modifiers[a] = AbilityModifier(state.Scores[a])
		d.SavingThrows[a] = SavingThrowTotal(a, state.Scores, pb, state.SaveProficiencies)
	}
	for _, s := range dnd5e.AllSkills() {
		d.Skills[s] = SkillTotal(s, state.Scores, pb, state.SkillProficiencies, state.Expertise)
	}

	return d
}

// Rederive returns a copy of state with Derived recomputed
func Rederive(state *dnd5e.CharacterState) *dnd5e.CharacterState {
	out := state.Clone()
	if out == nil {
		return nil
	}
	out.Derived = Derive(out)
	return out
}
