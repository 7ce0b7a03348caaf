package engine

import (
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// SkillGrantPrefix marks a reference proficiency string as a skill
const SkillGrantPrefix = "Skill: "

// SkillGrants holds the fixed proficiency strings granted by each source, as
// they appear in reference data ("Skill: Perception", "Tool: Smith's Tools").
// Class choice lists are not a source.
type SkillGrants struct {
	RaceTraits    []string
	SubraceTraits []string
	Background    []string
	Subclass      []string
}

// All returns every grant string in source order
func (g *SkillGrants) All() []string {
	if g == nil {
		return nil
	}
	all := make([]string, 0, len(g.RaceTraits)+len(g.SubraceTraits)+len(g.Background)+len(g.Subclass))
	all = append(all, g.RaceTraits...)
	all = append(all, g.SubraceTraits...)
	all = append(all, g.Background...)
	all = append(all, g.Subclass...)
	return all
}

// ParseSkillGrant extracts the skill from a "Skill: <Name>" string. Anything
// else, including skill names outside the catalog, yields false.
func ParseSkillGrant(grant string) (dnd5e.Skill, bool) {
	name, ok := strings.CutPrefix(strings.TrimSpace(grant), SkillGrantPrefix)
	if !ok {
		return 0, false
	}
	return dnd5e.ParseSkill(name)
}

// AggregateSkillProficiencies unions the granted skills with the user's own
// selections. Unknown names are dropped and the result is sorted. Neither
// argument is modified.
func AggregateSkillProficiencies(grants *SkillGrants, userSelected []string) dnd5e.SkillSet {
	skills := make([]dnd5e.Skill, 0, len(userSelected))
	for _, grant := range grants.All() {
		if s, ok := ParseSkillGrant(grant); ok {
			skills = append(skills, s)
		}
	}
	for _, name := range userSelected {
		if s, ok := dnd5e.ParseSkill(name); ok {
			skills = append(skills, s)
		}
	}
	return dnd5e.NewSkillSet(skills...)
}

// PruneExpertise drops every expertise skill that is not also proficient
func PruneExpertise(proficient, expertise dnd5e.SkillSet) dnd5e.SkillSet {
	kept := make([]dnd5e.Skill, 0, len(expertise))
	for _, s := range expertise {
		if proficient.Contains(s) {
			kept = append(kept, s)
		}
	}
	return dnd5e.NewSkillSet(kept...)
}
