package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// editFlags are the sheet edits shared by derive and roll
type editFlags struct {
	name       string
	alignment  string
	race       string
	subrace    string
	background string
	class      string
	subclass   string
	level      int
	scores     []string
	saves      []string
	skills     []string
	expertise  []string
	armor      string
	shield     bool
	miscAC     int
	manualAC   int
	autoAC     bool
	hpMax      int
	hp         int
	hpTemp     int
	sorcery    int
	sorcerySp  int
	slots      []string
	slotsUsed  []string
	prepare    []string
	resolve    bool
}

func (f *editFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Character name")
	flags.StringVar(&f.alignment, "alignment", "", "Alignment, e.g. \"Chaotic Good\"")
	flags.StringVar(&f.race, "race", "", "Race index, e.g. elf")
	flags.StringVar(&f.subrace, "subrace", "", "Subrace index, e.g. high-elf")
	flags.StringVar(&f.background, "background", "", "Background index, e.g. acolyte")
	flags.StringVar(&f.class, "class", "", "Class index, e.g. wizard")
	flags.StringVar(&f.subclass, "subclass", "", "Subclass index, e.g. evocation")
	flags.IntVar(&f.level, "level", 0, "Character level (1-20)")
	flags.StringArrayVar(&f.scores, "score", nil, "Ability score as Ability=N, e.g. --score STR=16 (repeatable)")
	flags.StringSliceVar(&f.saves, "saves", nil, "Saving throw proficiencies (replaces the class baseline)")
	flags.StringSliceVar(&f.skills, "skills", nil, "Skill proficiencies")
	flags.StringSliceVar(&f.expertise, "expertise", nil, "Expertise skills (must be proficient)")
	flags.StringVar(&f.armor, "armor", "", "Equipped armor, e.g. \"Chain Mail\"")
	flags.BoolVar(&f.shield, "shield", false, "Carry a shield")
	flags.IntVar(&f.miscAC, "misc-ac", 0, "Miscellaneous AC bonus")
	flags.IntVar(&f.manualAC, "manual-ac", 0, "Report this AC instead of computing it")
	flags.BoolVar(&f.autoAC, "auto-ac", false, "Clear a manual AC and compute it again")
	flags.IntVar(&f.hpMax, "hp-max", 0, "Maximum hit points")
	flags.IntVar(&f.hp, "hp", 0, "Current hit points")
	flags.IntVar(&f.hpTemp, "hp-temp", 0, "Temporary hit points")
	flags.IntVar(&f.sorcery, "sorcery-points", 0, "Sorcery points available")
	flags.IntVar(&f.sorcerySp, "sorcery-spent", 0, "Sorcery points spent")
	flags.StringArrayVar(&f.slots, "slots", nil, "Spell slots as Level=N, e.g. --slots 1=4 (repeatable)")
	flags.StringArrayVar(&f.slotsUsed, "slots-used", nil, "Spent spell slots as Level=N (repeatable)")
	flags.StringArrayVar(&f.prepare, "prepare", nil, "Prepare a spell as Level=index, e.g. --prepare 1=shield (repeatable)")
	flags.BoolVar(&f.resolve, "resolve", false, "Add skill proficiencies granted by race, subrace, background and subclass")
}

// apply runs the requested edits in dependency order: identity, class,
// subclass, level, scores, proficiencies, armor, combat, spellbook and
// finally granted skills
func (f *editFlags) apply(ctx context.Context, cmd *cobra.Command, svc character.Service, state *dnd5e.CharacterState) (*dnd5e.CharacterState, error) {
	changed := cmd.Flags().Changed
	step := func(out *character.StateOutput, err error) error {
		if err != nil {
			return err
		}
		state = out.Character
		return nil
	}

	if changed("name") || changed("alignment") || changed("race") || changed("subrace") || changed("background") {
		input := &character.SetIdentityInput{
			Character:    state,
			Name:         pick(changed("name"), f.name, state.Name),
			Alignment:    pick(changed("alignment"), f.alignment, state.Alignment),
			RaceID:       pick(changed("race"), f.race, state.RaceID),
			SubraceID:    pick(changed("subrace"), f.subrace, state.SubraceID),
			BackgroundID: pick(changed("background"), f.background, state.BackgroundID),
		}
		if changed("race") && !changed("subrace") && f.race != state.RaceID {
			input.SubraceID = ""
		}
		if err := step(svc.SetIdentity(ctx, input)); err != nil {
			return nil, err
		}
	}

	if changed("class") {
		if err := step(svc.SetClass(ctx, &character.SetClassInput{Character: state, ClassID: f.class})); err != nil {
			return nil, err
		}
	}
	if changed("subclass") {
		if err := step(svc.SetSubclass(ctx, &character.SetSubclassInput{Character: state, SubclassID: f.subclass})); err != nil {
			return nil, err
		}
	}
	if changed("level") {
		if err := step(svc.SetLevel(ctx, &character.SetLevelInput{Character: state, Level: f.level})); err != nil {
			return nil, err
		}
	}

	for _, raw := range f.scores {
		ability, score, err := parseScore(raw)
		if err != nil {
			return nil, err
		}
		if err := step(svc.SetAbilityScore(ctx, &character.SetAbilityScoreInput{
			Character: state,
			Ability:   ability,
			Score:     score,
		})); err != nil {
			return nil, err
		}
	}

	if changed("saves") {
		if err := step(svc.SetSaveProficiencies(ctx, &character.SetSaveProficienciesInput{Character: state, Abilities: f.saves})); err != nil {
			return nil, err
		}
	}
	if changed("skills") {
		if err := step(svc.SetSkillProficiencies(ctx, &character.SetSkillProficienciesInput{Character: state, Skills: f.skills})); err != nil {
			return nil, err
		}
	}
	if changed("expertise") {
		if err := step(svc.SetExpertise(ctx, &character.SetExpertiseInput{Character: state, Skills: f.expertise})); err != nil {
			return nil, err
		}
	}

	if changed("manual-ac") && changed("auto-ac") && f.autoAC {
		return nil, errors.InvalidArgument("--manual-ac and --auto-ac cannot be combined")
	}
	if changed("armor") || changed("shield") || changed("misc-ac") || changed("manual-ac") || changed("auto-ac") {
		sel := state.Armor
		if changed("armor") {
			sel.Equipped = f.armor
		}
		if changed("shield") {
			sel.Shield = f.shield
		}
		if changed("misc-ac") {
			sel.MiscBonus = f.miscAC
		}
		if changed("manual-ac") {
			sel.ManualOverride = true
			sel.ManualAC = f.manualAC
		}
		if f.autoAC {
			sel.ManualOverride = false
			sel.ManualAC = 0
		}
		if err := step(svc.SetArmor(ctx, &character.SetArmorInput{Character: state, Armor: sel})); err != nil {
			return nil, err
		}
	}

	if changed("hp-max") || changed("hp") || changed("hp-temp") || changed("sorcery-points") || changed("sorcery-spent") {
		combat := state.Combat
		if changed("hp-max") {
			combat.HPMax = f.hpMax
		}
		if changed("hp") {
			combat.HPCurrent = f.hp
		}
		if changed("hp-temp") {
			combat.HPTemp = f.hpTemp
		}
		if changed("sorcery-points") || changed("sorcery-spent") {
			sp := dnd5e.SorceryPoints{}
			if combat.Sorcery != nil {
				sp = *combat.Sorcery
			}
			if changed("sorcery-points") {
				sp.Available = f.sorcery
			}
			if changed("sorcery-spent") {
				sp.Spent = f.sorcerySp
			}
			combat.Sorcery = &sp
		}
		if err := step(svc.SetCombat(ctx, &character.SetCombatInput{Character: state, Combat: combat})); err != nil {
			return nil, err
		}
	}

	if len(f.slots) > 0 || len(f.slotsUsed) > 0 || len(f.prepare) > 0 {
		sb, err := f.spellbook(state.Spellbook)
		if err != nil {
			return nil, err
		}
		if err := step(svc.SetSpellbook(ctx, &character.SetSpellbookInput{Character: state, Raw: sb.Raw()})); err != nil {
			return nil, err
		}
	}

	if f.resolve {
		out, err := svc.ResolveAutoProficiencies(ctx, &character.ResolveAutoProficienciesInput{Character: state})
		if err != nil {
			return nil, err
		}
		for _, source := range out.Unavailable {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s could not be looked up; its proficiencies were skipped\n", source)
		}
		state = out.Character
	}

	return state, nil
}

// spellbook applies the slot and preparation flags on top of the current
// spellbook
func (f *editFlags) spellbook(current dnd5e.SpellbookState) (dnd5e.SpellbookState, error) {
	sb := current
	for l := range sb.Prepared {
		sb.Prepared[l] = append([]string{}, current.Prepared[l]...)
	}

	for _, raw := range f.slots {
		level, n, err := parseSlot("slots", raw)
		if err != nil {
			return sb, err
		}
		sb.Slots[level] = n
	}
	for _, raw := range f.slotsUsed {
		level, n, err := parseSlot("slots-used", raw)
		if err != nil {
			return sb, err
		}
		sb.SlotsUsed[level] = n
	}
	for _, raw := range f.prepare {
		level, id, err := parseLevelPair("prepare", raw, dnd5e.CantripLevel)
		if err != nil {
			return sb, err
		}
		if id == "" {
			return sb, errors.InvalidArgumentf("invalid prepare %q (expected Level=index)", raw)
		}
		sb.Prepared[level] = append(sb.Prepared[level], id)
	}
	return sb, nil
}

// parseSlot splits "1=4" into a slot level and a non-negative count
func parseSlot(flag, raw string) (int, int, error) {
	level, value, err := parseLevelPair(flag, raw, dnd5e.MinSlotLevel)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, 0, errors.InvalidArgumentf("invalid %s %q (expected Level=N with N >= 0)", flag, raw)
	}
	return level, n, nil
}

func parseLevelPair(flag, raw string, minLevel int) (int, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, "", errors.InvalidArgumentf("invalid %s %q (expected Level=value)", flag, raw)
	}
	level, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || level < minLevel || level > dnd5e.MaxSpellLevel {
		return 0, "", errors.InvalidArgumentf("invalid %s %q (level must be %d-%d)", flag, raw, minLevel, dnd5e.MaxSpellLevel)
	}
	return level, strings.TrimSpace(value), nil
}

func pick(changed bool, flagValue, current string) string {
	if changed {
		return flagValue
	}
	return current
}

// parseScore splits "STR=16" into an ability name and a score
func parseScore(raw string) (string, int, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", 0, errors.InvalidArgumentf("invalid score %q (expected Ability=N)", raw)
	}

	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", 0, errors.InvalidArgumentf("invalid score %q (expected Ability=N)", raw)
	}
	return strings.TrimSpace(name), score, nil
}

// loadCharacter imports a character file, or starts a new character when
// path is empty
func loadCharacter(ctx context.Context, cmd *cobra.Command, svc character.Service, path string) (*dnd5e.CharacterState, error) {
	if path == "" {
		out, err := svc.NewCharacter(ctx, &character.NewCharacterInput{})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	out, err := svc.Import(ctx, &character.ImportInput{Data: data})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// emit prints the sheet and writes the export file when out is set
func emit(ctx context.Context, cmd *cobra.Command, svc character.Service, state *dnd5e.CharacterState, format, out string) error {
	exported, err := svc.Export(ctx, &character.ExportInput{Character: state})
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		if out != "-" {
			if _, err := cmd.OutOrStdout().Write(append(exported.Data, '\n')); err != nil {
				return err
			}
		}
	case formatTable:
		renderSheet(cmd.OutOrStdout(), state)
	default:
		return errors.InvalidArgumentf("unknown format %q (expected %s or %s)", format, formatTable, formatJSON)
	}

	if out == "" {
		return nil
	}
	if err := writeOutput(cmd, out, exported.Data); err != nil {
		return err
	}
	if out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	}
	return nil
}

func (c *cli) deriveCmd() *cobra.Command {
	var (
		edits  editFlags
		format string
		out    string
		spells []string
	)

	cmd := &cobra.Command{
		Use:   "derive [character.json]",
		Short: "Apply edits to a character and show the derived sheet",
		Long: `Derive loads a character (or starts a new one), applies the edits given as flags
and prints the sheet with every derived statistic recomputed.

  Example: sheet derive --name Vex --race elf --class wizard --score INT=16 --resolve
  Example: sheet derive vex.json --level 5 --out vex.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := c.app.service

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			state, err := loadCharacter(ctx, cmd, svc, path)
			if err != nil {
				return err
			}

			state, err = edits.apply(ctx, cmd, svc, state)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("spells") {
				result, err := svc.SetChosenSpells(ctx, &character.SetChosenSpellsInput{Character: state, SpellIDs: spells})
				if err != nil {
					return err
				}
				state = result.Character
			}

			return emit(ctx, cmd, svc, state, format, out)
		},
	}

	edits.register(cmd)
	cmd.Flags().StringSliceVar(&spells, "spells", nil, "Chosen spell indexes")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the exported character to this file (- for stdout)")

	return cmd
}
