package external

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

func convertRace(race *entities.Race) *internalDnd5e.RaceData {
	// Trait references only carry a display name; the index is its slug
	traits := make([]internalDnd5e.ReferenceItem, 0, len(race.Traits))
	for _, trait := range race.Traits {
		traits = append(traits, internalDnd5e.ReferenceItem{
			ID:   generateSlug(trait.Name),
			Name: trait.Name,
		})
	}

	subraces := make([]internalDnd5e.ReferenceItem, 0, len(race.SubRaces))
	for _, subrace := range race.SubRaces {
		subraces = append(subraces, internalDnd5e.ReferenceItem{
			ID:   subrace.Key,
			Name: subrace.Name,
		})
	}

	speed := race.Speed
	if speed == 0 {
		speed = internalDnd5e.DefaultSpeed
	}

	return &internalDnd5e.RaceData{
		ID:            race.Key,
		Name:          race.Name,
		Speed:         speed,
		Traits:        traits,
		Proficiencies: itemNames(race.StartingProficiencies),
		Subraces:      subraces,
	}
}

// convertBackground keeps the skill grants; the library maps them from the
// SRD starting_proficiencies
func convertBackground(background *entities.Background) *internalDnd5e.BackgroundData {
	return &internalDnd5e.BackgroundData{
		ID:            background.Key,
		Name:          background.Name,
		Proficiencies: itemNames(background.SkillProficiencies),
	}
}

func convertSubrace(subrace *srdSubrace) *internalDnd5e.SubraceData {
	return &internalDnd5e.SubraceData{
		ID:            subrace.Index,
		Name:          subrace.Name,
		Traits:        convertSRDReferences(subrace.RacialTraits),
		Proficiencies: referenceNames(subrace.StartingProficiencies),
	}
}

func convertClass(class *entities.Class) *internalDnd5e.ClassData {
	savingThrows := make([]string, 0, len(class.SavingThrows))
	for _, st := range class.SavingThrows {
		// The API names saves by abbreviation ("STR")
		if ability, ok := internalDnd5e.ParseAbility(st.Name); ok {
			savingThrows = append(savingThrows, ability.String())
		}
	}

	return &internalDnd5e.ClassData{
		ID:           class.Key,
		Name:         class.Name,
		HitDie:       class.HitDie,
		SavingThrows: savingThrows,
		Subclasses:   []internalDnd5e.ReferenceItem{},
	}
}

func convertSubclass(subclass *srdSubclass) *internalDnd5e.SubclassData {
	spells := make([]srdReference, 0, len(subclass.Spells))
	for _, s := range subclass.Spells {
		spells = append(spells, s.Spell)
	}

	return &internalDnd5e.SubclassData{
		ID:          subclass.Index,
		Name:        subclass.Name,
		ClassID:     subclass.Class.Index,
		Description: strings.Join(subclass.Desc, "\n"),
		Features:    []internalDnd5e.FeatureData{},
		Spells:      convertSRDReferences(spells),
	}
}

// convertSubclassLevels flattens the per-level feature lists in level order
func convertSubclassLevels(levels []srdSubclassLevel, className string) []internalDnd5e.FeatureData {
	sorted := append([]srdSubclassLevel{}, levels...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	features := []internalDnd5e.FeatureData{}
	for _, level := range sorted {
		for _, ref := range level.Features {
			if ref.Index == "" {
				continue
			}
			features = append(features, internalDnd5e.FeatureData{
				ID:        ref.Index,
				Name:      ref.Name,
				Level:     level.Level,
				ClassName: className,
			})
		}
	}
	return features
}

func convertFeature(feature *entities.Feature) *internalDnd5e.FeatureData {
	featureData := &internalDnd5e.FeatureData{
		ID:    feature.Key,
		Name:  feature.Name,
		Level: feature.Level,
	}

	if feature.Class != nil {
		featureData.ClassName = feature.Class.Name
	}

	return featureData
}

func convertSpell(spell *entities.Spell) *internalDnd5e.SpellData {
	school := ""
	if spell.SpellSchool != nil {
		school = spell.SpellSchool.Name
	}

	return &internalDnd5e.SpellData{
		ID:            spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		School:        school,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
		Description:   buildSpellHeader(spell),
	}
}

// buildSpellHeader summarizes a spell, e.g. "Level 1 Evocation spell"
func buildSpellHeader(spell *entities.Spell) string {
	levelStr := "Cantrip"
	if spell.SpellLevel > 0 {
		levelStr = fmt.Sprintf("Level %d", spell.SpellLevel)
	}

	schoolName := "Unknown School"
	if spell.SpellSchool != nil {
		schoolName = spell.SpellSchool.Name
	}

	return fmt.Sprintf("%s %s spell", levelStr, schoolName)
}

func convertReferenceItems(refs []*entities.ReferenceItem) []internalDnd5e.ReferenceItem {
	items := make([]internalDnd5e.ReferenceItem, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		items = append(items, internalDnd5e.ReferenceItem{ID: ref.Key, Name: ref.Name})
	}
	return items
}

func itemNames(refs []*entities.ReferenceItem) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return names
}

func convertSRDReferences(refs []srdReference) []internalDnd5e.ReferenceItem {
	items := make([]internalDnd5e.ReferenceItem, 0, len(refs))
	for _, ref := range refs {
		if ref.Index == "" {
			continue
		}
		items = append(items, internalDnd5e.ReferenceItem{ID: ref.Index, Name: ref.Name})
	}
	return items
}

func referenceNames(refs []srdReference) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return names
}
