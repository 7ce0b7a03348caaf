package engine

import "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"

// AbilityModifier is floor((score - 10) / 2), rounding toward negative
// infinity: 9 gives -1 and 7 gives -2.
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// ProficiencyBonus follows the level curve 1-4:+2, 5-8:+3, 9-12:+4,
// 13-16:+5, 17+:+6.
func ProficiencyBonus(level int) int {
	switch {
	case level <= 4:
		return 2
	case level <= 8:
		return 3
	case level <= 12:
		return 4
	case level <= 16:
		return 5
	default:
		return 6
	}
}

// SavingThrowTotal is the ability modifier plus the proficiency bonus when
// the save is proficient.
func SavingThrowTotal(ability dnd5e.Ability, scores dnd5e.AbilityScores, profBonus int, saveProfs dnd5e.AbilitySet) int {
	total := AbilityModifier(scores.Get(ability))
	if saveProfs.Contains(ability) {
		total += profBonus
	}
	return total
}

// SkillTotal is the keyed ability modifier plus the proficiency bonus times
// 1 (proficient) or 2 (proficient with expertise). Expertise on its own
// counts for nothing.
func SkillTotal(skill dnd5e.Skill, scores dnd5e.AbilityScores, profBonus int, proficient, expertise dnd5e.SkillSet) int {
	multiplier := 0
	if proficient.Contains(skill) {
		multiplier = 1
		if expertise.Contains(skill) {
			multiplier = 2
		}
	}
	return AbilityModifier(scores.Get(skill.Ability())) + profBonus*multiplier
}

// ArmorClass computes AC for the named armor. Unknown names are treated as
// Unarmored. The Dexterity contribution never goes below zero.
func ArmorClass(scores dnd5e.AbilityScores, armorName string, shield bool, miscBonus int) int {
	armor, ok := dnd5e.LookupArmor(armorName)
	if !ok {
		armor = dnd5e.Unarmored()
	}

	dexMod := AbilityModifier(scores.Get(dnd5e.AbilityDexterity))
	var dex int
	switch armor.DexRule {
	case dnd5e.DexRuleFull:
		dex = dexMod
	case dnd5e.DexRuleCapped:
		dex = min(dexMod, dnd5e.DexCap)
	case dnd5e.DexRuleNone:
		dex = 0
	}

	ac := armor.BaseAC + max(0, dex) + miscBonus
	if shield {
		ac += dnd5e.ShieldBonus
	}
	return ac
}

// SelectionArmorClass returns the stored AC when the selection is manually
// overridden and recomputes it otherwise.
func SelectionArmorClass(scores dnd5e.AbilityScores, sel dnd5e.ArmorSelection) int {
	if sel.ManualOverride {
		return sel.ManualAC
	}
	return ArmorClass(scores, sel.Equipped, sel.Shield, sel.MiscBonus)
}

// PassivePerception is 10 + Wisdom modifier, plus the proficiency bonus if
// Perception is proficient.
func PassivePerception(scores dnd5e.AbilityScores, profBonus int, proficient dnd5e.SkillSet) int {
	total := 10 + AbilityModifier(scores.Get(dnd5e.AbilityWisdom))
	if proficient.Contains(dnd5e.SkillPerception) {
		total += profBonus
	}
	return total
}

// Initiative is the Dexterity modifier
func Initiative(scores dnd5e.AbilityScores) int {
	return AbilityModifier(scores.Get(dnd5e.AbilityDexterity))
}

// HitPointsAtFirst estimates first level hit points as 8 + Constitution
// modifier, at least 1.
func HitPointsAtFirst(scores dnd5e.AbilityScores) int {
	return max(1, 8+AbilityModifier(scores.Get(dnd5e.AbilityConstitution)))
}

// ClampLevel bounds a level to 1-20
func ClampLevel(level int) int {
	return min(max(level, dnd5e.MinLevel), dnd5e.MaxLevel)
}

// ClampScore bounds an ability score to 1-30. Only input boundaries clamp;
// the derivation functions accept any score.
func ClampScore(score int) int {
	return min(max(score, dnd5e.MinAbilityScore), dnd5e.MaxAbilityScore)
}
