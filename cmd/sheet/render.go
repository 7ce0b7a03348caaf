package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexeyco/simpletable"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

func newTable(headers ...string) *simpletable.Table {
	table := simpletable.New()
	cells := make([]*simpletable.Cell, 0, len(headers))
	for _, h := range headers {
		cells = append(cells, &simpletable.Cell{Align: simpletable.AlignLeft, Text: h})
	}
	table.Header = &simpletable.Header{Cells: cells}
	return table
}

func addRow(table *simpletable.Table, values ...string) {
	row := make([]*simpletable.Cell, 0, len(values))
	for _, v := range values {
		row = append(row, &simpletable.Cell{Align: simpletable.AlignLeft, Text: v})
	}
	table.Body.Cells = append(table.Body.Cells, row)
}

func printTable(w io.Writer, table *simpletable.Table) {
	table.SetStyle(simpletable.StyleUnicode)
	fmt.Fprintln(w, table.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func mark(ok bool) string {
	if ok {
		return "●"
	}
	return "○"
}

// renderSheet prints the character sheet: identity, abilities with saves,
// skills, the combat block and any spell slots
func renderSheet(w io.Writer, state *dnd5e.CharacterState) {
	derived := state.Derived

	identity := newTable("Property", "Value")
	addRow(identity, "Name", state.Name)
	addRow(identity, "Alignment", state.Alignment)
	addRow(identity, "Level", strconv.Itoa(state.Level))
	addRow(identity, "Race", orDash(strings.TrimSpace(state.RaceID+" "+state.SubraceID)))
	addRow(identity, "Class", orDash(strings.TrimSpace(state.ClassID+" "+state.SubclassID)))
	addRow(identity, "Background", orDash(state.BackgroundID))
	addRow(identity, "Proficiency Bonus", dnd5e.FormatModifier(derived.ProficiencyBonus))
	printTable(w, identity)

	abilities := newTable("Ability", "Score", "Modifier", "Save")
	for _, a := range dnd5e.AllAbilities() {
		addRow(abilities,
			a.String(),
			strconv.Itoa(state.Scores[a]),
			dnd5e.FormatModifier(derived.Modifiers[a]),
			mark(state.SaveProficiencies.Contains(a))+" "+dnd5e.FormatModifier(derived.SavingThrows[a]))
	}
	printTable(w, abilities)

	skills := newTable("Skill", "Ability", "Prof", "Bonus")
	for _, s := range dnd5e.AllSkills() {
		prof := mark(state.SkillProficiencies.Contains(s))
		if state.Expertise.Contains(s) {
			prof = "●●"
		}
		addRow(skills, s.String(), s.Ability().Abbreviation(), prof, dnd5e.FormatModifier(derived.Skills[s]))
	}
	printTable(w, skills)

	armor := state.Armor.Equipped
	if state.Armor.Shield {
		armor += " + Shield"
	}
	if state.Armor.ManualOverride {
		armor += " (manual)"
	}

	combat := newTable("Combat", "Value")
	addRow(combat, "Armor Class", strconv.Itoa(derived.ArmorClass))
	addRow(combat, "Armor", armor)
	addRow(combat, "Initiative", dnd5e.FormatModifier(derived.Initiative))
	addRow(combat, "Speed", strconv.Itoa(derived.Speed))
	addRow(combat, "Passive Perception", strconv.Itoa(derived.PassivePerception))
	addRow(combat, "Hit Points (level 1)", strconv.Itoa(derived.HitPointsAtFirst))
	if state.Combat.HPMax > 0 {
		addRow(combat, "Hit Points", fmt.Sprintf("%d/%d (+%d temp)", state.Combat.HPCurrent, state.Combat.HPMax, state.Combat.HPTemp))
	}
	if sp := state.Combat.Sorcery; sp != nil {
		addRow(combat, "Sorcery Points", fmt.Sprintf("%d available, %d spent", sp.Available, sp.Spent))
	}
	if len(state.ChosenSpells) > 0 {
		addRow(combat, "Spells", strings.Join(state.ChosenSpells, ", "))
	}
	printTable(w, combat)

	renderSpellbook(w, state.Spellbook)
}

// renderSpellbook prints levels that have slots, spent slots or prepared
// spells, and warns about overspent levels
func renderSpellbook(w io.Writer, sb dnd5e.SpellbookState) {
	table := newTable("Level", "Slots", "Used", "Remaining", "Prepared")
	rows := 0
	for l := dnd5e.CantripLevel; l <= dnd5e.MaxSpellLevel; l++ {
		if sb.Slots[l] == 0 && sb.SlotsUsed[l] == 0 && len(sb.Prepared[l]) == 0 {
			continue
		}
		level := strconv.Itoa(l)
		slots, used, remaining := strconv.Itoa(sb.Slots[l]), strconv.Itoa(sb.SlotsUsed[l]), strconv.Itoa(sb.Remaining(l))
		if l == dnd5e.CantripLevel {
			level, slots, used, remaining = "Cantrips", "-", "-", "-"
		}
		addRow(table, level, slots, used, remaining, orDash(strings.Join(sb.Prepared[l], ", ")))
		rows++
	}
	if rows == 0 {
		return
	}
	printTable(w, table)

	if over := sb.Overspent(); len(over) > 0 {
		fmt.Fprintf(w, "warning: more slots used than available at level %s\n", joinInts(over))
	}
}

func renderRolls(w io.Writer, rolls []*dice.DiceRoll) {
	table := newTable("Ability", "Kept", "Dropped", "Total")
	for _, roll := range rolls {
		if roll == nil {
			continue
		}
		addRow(table, roll.Description, joinInts(roll.Dice), orDash(joinInts(roll.Dropped)), strconv.Itoa(roll.Total))
	}
	printTable(w, table)
}

func renderSummaries(w io.Writer, summaries []*character.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "no saved characters")
		return
	}

	table := newTable("Name", "Level", "Class", "Saved At")
	for _, s := range summaries {
		addRow(table, s.Name, strconv.Itoa(s.Level), orDash(s.Class), s.SavedAt.Format("2006-01-02 15:04:05"))
	}
	printTable(w, table)
}

func renderCheck(w io.Writer, checked *character.CheckStoreOutput) {
	problems := len(checked.Corrupted) + len(checked.Unindexed) + len(checked.Dangling)
	fmt.Fprintf(w, "checked %d characters, %d problems\n", checked.Checked, problems)
	if problems == 0 {
		return
	}

	table := newTable("Name", "Problem")
	for _, name := range checked.Corrupted {
		addRow(table, name, "record cannot be decoded")
	}
	for _, name := range checked.Unindexed {
		addRow(table, name, "missing from index")
	}
	for _, name := range checked.Dangling {
		addRow(table, name, "index entry without record")
	}
	printTable(w, table)

	if checked.Repaired {
		fmt.Fprintln(w, "repaired")
	} else {
		fmt.Fprintln(w, "run with --repair to fix")
	}
}

func renderReferenceItems(w io.Writer, items []dnd5e.ReferenceItem, unavailable bool) {
	if unavailable {
		fmt.Fprintln(w, "warning: reference data is unavailable; the list may be incomplete")
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}

	table := newTable("ID", "Name")
	for _, item := range items {
		addRow(table, item.ID, item.Name)
	}
	printTable(w, table)
}

func homebrewTag(name string, homebrew bool) string {
	if homebrew {
		return name + " (homebrew)"
	}
	return name
}

func renderClassDetail(w io.Writer, class *dnd5e.ClassData) {
	table := newTable("Property", "Value")
	addRow(table, "Class", class.Name+" ("+class.ID+")")
	addRow(table, "Hit Die", "d"+strconv.Itoa(class.HitDie))
	addRow(table, "Saving Throws", orDash(strings.Join(class.SavingThrows, ", ")))
	printTable(w, table)

	if len(class.Subclasses) == 0 {
		fmt.Fprintln(w, "no subclasses")
		return
	}
	subclasses := newTable("Subclass", "Name")
	for _, sc := range class.Subclasses {
		addRow(subclasses, sc.ID, sc.Name)
	}
	printTable(w, subclasses)
}

func renderFeatureDetail(w io.Writer, feature *dnd5e.FeatureData, homebrew bool) {
	table := newTable("Property", "Value")
	addRow(table, "Feature", homebrewTag(feature.Name, homebrew)+" ("+feature.ID+")")
	addRow(table, "Class", orDash(feature.ClassName))
	addRow(table, "Level", strconv.Itoa(feature.Level))
	if len(feature.Proficiencies) > 0 {
		addRow(table, "Proficiencies", strings.Join(feature.Proficiencies, ", "))
	}
	printTable(w, table)
	if feature.Description != "" {
		fmt.Fprintln(w, feature.Description)
	}
}

func renderSpellDetail(w io.Writer, spell *dnd5e.SpellData, homebrew bool) {
	level := "Cantrip"
	if spell.Level > dnd5e.CantripLevel {
		level = strconv.Itoa(spell.Level)
	}

	table := newTable("Property", "Value")
	addRow(table, "Spell", homebrewTag(spell.Name, homebrew)+" ("+spell.ID+")")
	addRow(table, "Level", level)
	addRow(table, "School", orDash(spell.School))
	addRow(table, "Casting Time", orDash(spell.CastingTime))
	addRow(table, "Range", orDash(spell.Range))
	addRow(table, "Duration", orDash(spell.Duration))
	if spell.Ritual {
		addRow(table, "Ritual", "yes")
	}
	if spell.Concentration {
		addRow(table, "Concentration", "yes")
	}
	printTable(w, table)
	if spell.Description != "" {
		fmt.Fprintln(w, spell.Description)
	}
}

func renderArmorCatalog(w io.Writer) {
	table := newTable("Armor", "Category", "Base AC", "Dexterity")
	for _, a := range dnd5e.ArmorCatalog() {
		dex := a.DexRule.String()
		if a.DexRule == dnd5e.DexRuleCapped {
			dex = fmt.Sprintf("max +%d", dnd5e.DexCap)
		}
		addRow(table, a.Name, a.Category.String(), strconv.Itoa(a.BaseAC), dex)
	}
	addRow(table, "Shield", "-", fmt.Sprintf("+%d", dnd5e.ShieldBonus), "-")
	printTable(w, table)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
