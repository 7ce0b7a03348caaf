// Package content merges built-in reference content with user supplied
// homebrew content.
package content

import (
	"sort"
	"strings"
	"unicode"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// HomebrewSuffix marks identifiers synthesized for homebrew entries
const HomebrewSuffix = "-homebrew"

// Entry is one catalog item: a subclass, spell, trait or subclass feature.
// Fields that do not apply to a kind are left empty.
type Entry struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string   `json:"name" yaml:"name"`
	Class         string   `json:"class,omitempty" yaml:"class,omitempty"`
	Subclass      string   `json:"subclass,omitempty" yaml:"subclass,omitempty"`
	Level         int      `json:"level,omitempty" yaml:"level,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Proficiencies []string `json:"proficiencies,omitempty" yaml:"proficiencies,omitempty"`
}

// Catalog is an ordered collection of entries per kind
type Catalog struct {
	Subclasses       []Entry `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	Spells           []Entry `json:"spells,omitempty" yaml:"spells,omitempty"`
	Traits           []Entry `json:"traits,omitempty" yaml:"traits,omitempty"`
	SubclassFeatures []Entry `json:"subclass_features,omitempty" yaml:"subclass_features,omitempty"`
}

// Len returns the total number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Subclasses) + len(c.Spells) + len(c.Traits) + len(c.SubclassFeatures)
}

// EffectiveCatalog concatenates builtin and user content, builtin first.
// Duplicates are kept; Index lets the later entry win, so a user entry with
// a built-in identifier shadows it. User entries without an identifier get
// one synthesized from their name.
func EffectiveCatalog(builtin, user *Catalog) *Catalog {
	if builtin == nil {
		builtin = &Catalog{}
	}
	user = WithIdentifiers(user)

	return &Catalog{
		Subclasses:       concat(builtin.Subclasses, user.Subclasses),
		Spells:           concat(builtin.Spells, user.Spells),
		Traits:           concat(builtin.Traits, user.Traits),
		SubclassFeatures: concat(builtin.SubclassFeatures, user.SubclassFeatures),
	}
}

// WithIdentifiers returns a copy of c where every entry has an ID
func WithIdentifiers(c *Catalog) *Catalog {
	if c == nil {
		return &Catalog{}
	}
	return &Catalog{
		Subclasses:       withIdentifiers(c.Subclasses),
		Spells:           withIdentifiers(c.Spells),
		Traits:           withIdentifiers(c.Traits),
		SubclassFeatures: withIdentifiers(c.SubclassFeatures),
	}
}

func withIdentifiers(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			e.ID = HomebrewID(e.Name)
		}
		out[i] = e
	}
	return out
}

func concat(a, b []Entry) []Entry {
	out := make([]Entry, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Index maps identifiers to entries; the last entry with an ID wins
func Index(entries []Entry) map[string]Entry {
	idx := make(map[string]Entry, len(entries))
	for _, e := range entries {
		idx[e.ID] = e
	}
	return idx
}

// Filter returns entries matching keep, preserving order
func Filter(entries []Entry, keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Slug lowercases name, drops apostrophes and turns every other run of
// non-alphanumerics into a single hyphen: "Mordenkainen's Sword" becomes
// "mordenkainens-sword".
func Slug(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '\'' || r == '’':
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// HomebrewID is the identifier given to an unidentified homebrew entry
func HomebrewID(name string) string {
	slug := Slug(name)
	if slug == "" {
		return strings.TrimPrefix(HomebrewSuffix, "-")
	}
	return slug + HomebrewSuffix
}

// MergeSpellLists combines spell lists, keeping one item per identifier
// (the last one seen), sorted by their picker label "Name (index)".
func MergeSpellLists(lists ...[]dnd5e.ReferenceItem) []dnd5e.ReferenceItem {
	byID := make(map[string]dnd5e.ReferenceItem)
	for _, list := range lists {
		for _, item := range list {
			if item.ID == "" {
				continue
			}
			byID[item.ID] = item
		}
	}

	out := make([]dnd5e.ReferenceItem, 0, len(byID))
	for _, item := range byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return dnd5e.SpellLabel(out[i]) < dnd5e.SpellLabel(out[j])
	})
	return out
}

// ReferenceItems projects entries to list items
func ReferenceItems(entries []Entry) []dnd5e.ReferenceItem {
	out := make([]dnd5e.ReferenceItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dnd5e.ReferenceItem{ID: e.ID, Name: e.Name})
	}
	return out
}
