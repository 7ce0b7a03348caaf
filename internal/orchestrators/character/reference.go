package character

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/content"
)

// unavailableSet collects the lookups that could not be resolved
type unavailableSet struct {
	mu      sync.Mutex
	sources []string
}

func (u *unavailableSet) add(source string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sources = append(u.sources, source)
}

// check records r when the source was unavailable and reports whether the
// value is present
func check[T any](u *unavailableSet, source string, r external.Result[T]) bool {
	if r.Status == external.StatusUnavailable {
		u.add(source)
	}
	return r.OK()
}

// ResolveAutoProficiencies looks up the fixed skill grants of the race,
// subrace, background and subclass and merges them into the character's
// skill proficiencies. Lookups that fail are skipped and reported; class
// choice lists are never granted.
func (o *Orchestrator) ResolveAutoProficiencies(ctx context.Context, input *character.ResolveAutoProficienciesInput) (*character.ResolveAutoProficienciesOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	state := input.Character

	grants := &engine.SkillGrants{}
	unavailable := &unavailableSet{}

	// each source writes only its own field
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grants.RaceTraits = o.raceGrants(gctx, state.RaceID, unavailable)
		return gctx.Err()
	})
	g.Go(func() error {
		grants.SubraceTraits = o.subraceGrants(gctx, state.SubraceID, unavailable)
		return gctx.Err()
	})
	g.Go(func() error {
		grants.Background = o.backgroundGrants(gctx, state.BackgroundID, unavailable)
		return gctx.Err()
	})
	g.Go(func() error {
		grants.Subclass = o.subclassGrants(gctx, state.SubclassID, state.Level, unavailable)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to resolve proficiencies")
	}

	merged := o.engine.AggregateSkillProficiencies(grants, state.SkillProficiencies.Names())
	out, err := o.edit(state, func(next *dnd5e.CharacterState) error {
		next.SkillProficiencies = merged
		next.Expertise = engine.PruneExpertise(merged, next.Expertise)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(unavailable.sources) > 0 {
		slog.WarnContext(ctx, "some proficiency sources were unavailable",
			"sources", unavailable.sources)
	}

	return &character.ResolveAutoProficienciesOutput{
		Character:   out.Character,
		Grants:      grants,
		Unavailable: unavailable.sources,
	}, nil
}

func (o *Orchestrator) raceGrants(ctx context.Context, raceID string, u *unavailableSet) []string {
	if raceID == "" {
		return nil
	}

	race := o.externalClient.GetRace(ctx, raceID)
	if !check(u, "race "+raceID, race) {
		return nil
	}

	grants := append([]string{}, race.Value.Proficiencies...)
	return append(grants, o.traitGrants(ctx, race.Value.Traits, u)...)
}

func (o *Orchestrator) subraceGrants(ctx context.Context, subraceID string, u *unavailableSet) []string {
	if subraceID == "" {
		return nil
	}

	subrace := o.externalClient.GetSubrace(ctx, subraceID)
	if !check(u, "subrace "+subraceID, subrace) {
		return nil
	}

	grants := append([]string{}, subrace.Value.Proficiencies...)
	return append(grants, o.traitGrants(ctx, subrace.Value.Traits, u)...)
}

// traitGrants prefers a homebrew trait over the reference one with the same id
func (o *Orchestrator) traitGrants(ctx context.Context, traits []dnd5e.ReferenceItem, u *unavailableSet) []string {
	homebrew := content.Index(o.catalog.Traits)

	var grants []string
	for _, ref := range traits {
		if entry, ok := homebrew[ref.ID]; ok {
			grants = append(grants, entry.Proficiencies...)
			continue
		}

		trait := o.externalClient.GetTrait(ctx, ref.ID)
		if !check(u, "trait "+ref.ID, trait) {
			continue
		}
		grants = append(grants, trait.Value.Proficiencies...)
	}
	return grants
}

func (o *Orchestrator) backgroundGrants(ctx context.Context, backgroundID string, u *unavailableSet) []string {
	if backgroundID == "" {
		return nil
	}

	background := o.externalClient.GetBackground(ctx, backgroundID)
	if !check(u, "background "+backgroundID, background) {
		return nil
	}
	return append([]string{}, background.Value.Proficiencies...)
}

// subclassGrants collects proficiencies of subclass features unlocked at or
// below level, from the reference data and from homebrew features
func (o *Orchestrator) subclassGrants(ctx context.Context, subclassID string, level int, u *unavailableSet) []string {
	if subclassID == "" {
		return nil
	}

	var grants []string
	subclass := o.externalClient.GetSubclass(ctx, subclassID)
	if check(u, "subclass "+subclassID, subclass) {
		for _, feature := range subclass.Value.Features {
			if feature.Level <= level {
				grants = append(grants, feature.Proficiencies...)
			}
		}
	}

	homebrew := content.Filter(o.catalog.SubclassFeatures, func(e content.Entry) bool {
		return e.Subclass == subclassID && e.Level <= level
	})
	for _, entry := range homebrew {
		grants = append(grants, entry.Proficiencies...)
	}
	return grants
}

// ListSubclasses returns the reference subclasses of a class followed by
// matching homebrew subclasses. A homebrew entry replaces a reference entry
// with the same id.
func (o *Orchestrator) ListSubclasses(ctx context.Context, input *character.ListSubclassesInput) (*character.ListSubclassesOutput, error) {
	if input == nil || input.ClassID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}
	classID := dnd5e.CatalogIndex(input.ClassID)

	reference := o.externalClient.ListSubclasses(ctx, classID)
	referenced := itemIDs(reference.ValueOr(nil))
	homebrew := content.Filter(o.catalog.Subclasses, func(e content.Entry) bool {
		return referenced[e.ID] || dnd5e.CatalogIndex(e.Class) == classID
	})

	return &character.ListSubclassesOutput{
		Subclasses:  mergeReferenceItems(reference.ValueOr(nil), content.ReferenceItems(homebrew)),
		Unavailable: reference.Status == external.StatusUnavailable,
	}, nil
}

// ListSpellOptions returns the spell picker options: class spells, subclass
// spells and matching homebrew spells, one per id, sorted by label. A
// homebrew spell with the id of a listed reference spell replaces it.
func (o *Orchestrator) ListSpellOptions(ctx context.Context, input *character.ListSpellOptionsInput) (*character.ListSpellOptionsOutput, error) {
	if input == nil || input.ClassID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}
	classID := dnd5e.CatalogIndex(input.ClassID)
	subclassID := input.SubclassID

	classSpells := o.externalClient.ListClassSpells(ctx, classID)
	unavailable := classSpells.Status == external.StatusUnavailable

	var subclassSpells []dnd5e.ReferenceItem
	if subclassID != "" {
		result := o.externalClient.ListSubclassSpells(ctx, subclassID)
		unavailable = unavailable || result.Status == external.StatusUnavailable
		subclassSpells = result.ValueOr(nil)
	}

	referenced := itemIDs(classSpells.ValueOr(nil), subclassSpells)
	homebrew := content.Filter(o.catalog.Spells, func(e content.Entry) bool {
		if referenced[e.ID] {
			return true
		}
		if e.Class != "" && dnd5e.CatalogIndex(e.Class) == classID {
			return true
		}
		return subclassID != "" && e.Subclass == subclassID
	})

	return &character.ListSpellOptionsOutput{
		Spells:      content.MergeSpellLists(classSpells.ValueOr(nil), subclassSpells, content.ReferenceItems(homebrew)),
		Unavailable: unavailable,
	}, nil
}

// ListCatalog returns the race, class or background catalog
func (o *Orchestrator) ListCatalog(ctx context.Context, input *character.ListCatalogInput) (*character.ListCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result external.Result[[]dnd5e.ReferenceItem]
	switch strings.ToLower(strings.TrimSpace(input.Kind)) {
	case character.CatalogRaces:
		result = o.externalClient.ListRaces(ctx)
	case character.CatalogClasses:
		result = o.externalClient.ListClasses(ctx)
	case character.CatalogBackgrounds:
		result = o.externalClient.ListBackgrounds(ctx)
	default:
		return nil, errors.InvalidArgumentf("unknown catalog %q", input.Kind).
			WithMeta("allowed", strings.Join(character.CatalogKinds(), ","))
	}

	return &character.ListCatalogOutput{
		Items:       result.ValueOr([]dnd5e.ReferenceItem{}),
		Unavailable: result.Status == external.StatusUnavailable,
	}, nil
}

// GetClassDetail returns a class with its hit die, saving throws and
// subclasses, homebrew subclasses included
func (o *Orchestrator) GetClassDetail(ctx context.Context, input *character.GetClassDetailInput) (*character.GetClassDetailOutput, error) {
	if input == nil || strings.TrimSpace(input.ClassID) == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}
	classID := dnd5e.CatalogIndex(input.ClassID)

	class := o.externalClient.GetClass(ctx, classID)
	if err := required(class, "class", classID); err != nil {
		return nil, err
	}

	detail := *class.Value
	referenced := itemIDs(class.Value.Subclasses)
	homebrew := content.Filter(o.catalog.Subclasses, func(e content.Entry) bool {
		return referenced[e.ID] || dnd5e.CatalogIndex(e.Class) == classID
	})
	detail.Subclasses = mergeReferenceItems(class.Value.Subclasses, content.ReferenceItems(homebrew))

	return &character.GetClassDetailOutput{Class: &detail}, nil
}

// GetFeatureDetail returns a class or subclass feature. A homebrew subclass
// feature with the same id is preferred.
func (o *Orchestrator) GetFeatureDetail(ctx context.Context, input *character.GetFeatureDetailInput) (*character.GetFeatureDetailOutput, error) {
	if input == nil || strings.TrimSpace(input.FeatureID) == "" {
		return nil, errors.InvalidArgument("feature ID is required")
	}
	featureID := strings.TrimSpace(input.FeatureID)

	if entry, ok := content.Index(o.catalog.SubclassFeatures)[featureID]; ok {
		return &character.GetFeatureDetailOutput{
			Feature: &dnd5e.FeatureData{
				ID:            entry.ID,
				Name:          entry.Name,
				Description:   entry.Description,
				Level:         entry.Level,
				Proficiencies: entry.Proficiencies,
			},
			Homebrew: true,
		}, nil
	}

	feature := o.externalClient.GetFeature(ctx, featureID)
	if err := required(feature, "feature", featureID); err != nil {
		return nil, err
	}
	return &character.GetFeatureDetailOutput{Feature: feature.Value}, nil
}

// GetSpellDetail returns the spell preview. A homebrew spell with the same
// id is preferred.
func (o *Orchestrator) GetSpellDetail(ctx context.Context, input *character.GetSpellDetailInput) (*character.GetSpellDetailOutput, error) {
	if input == nil || strings.TrimSpace(input.SpellID) == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}
	spellID := strings.TrimSpace(input.SpellID)

	if entry, ok := content.Index(o.catalog.Spells)[spellID]; ok {
		return &character.GetSpellDetailOutput{
			Spell: &dnd5e.SpellData{
				ID:          entry.ID,
				Name:        entry.Name,
				Level:       entry.Level,
				Description: entry.Description,
			},
			Homebrew: true,
		}, nil
	}

	spell := o.externalClient.GetSpell(ctx, spellID)
	if err := required(spell, "spell", spellID); err != nil {
		return nil, err
	}
	return &character.GetSpellDetailOutput{Spell: spell.Value}, nil
}

// required turns an empty lookup into NotFound and passes through the
// Unavailable error of a failed one
func required[T any](r external.Result[T], kind, id string) error {
	switch r.Status {
	case external.StatusPresent:
		return nil
	case external.StatusUnavailable:
		if r.Err != nil {
			return r.Err
		}
		return errors.Unavailablef("%s %s is unavailable", kind, id)
	default:
		return errors.NotFoundf("%s %s not found", kind, id).WithMeta("id", id)
	}
}

func itemIDs(lists ...[]dnd5e.ReferenceItem) map[string]bool {
	ids := make(map[string]bool)
	for _, list := range lists {
		for _, item := range list {
			if item.ID != "" {
				ids[item.ID] = true
			}
		}
	}
	return ids
}

// mergeReferenceItems keeps first-seen order; later items with a known id
// replace the earlier one in place
func mergeReferenceItems(lists ...[]dnd5e.ReferenceItem) []dnd5e.ReferenceItem {
	position := make(map[string]int)
	out := []dnd5e.ReferenceItem{}
	for _, list := range lists {
		for _, item := range list {
			if item.ID == "" {
				continue
			}
			if i, ok := position[item.ID]; ok {
				out[i] = item
				continue
			}
			position[item.ID] = len(out)
			out = append(out, item)
		}
	}
	return out
}
