// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/CraneCD/dnd-55e-character-sheet/internal/services/character Service

import (
	"context"
	"time"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
)

// Service defines the interface for character operations. Edits take the
// current state and hand back a new one with derived values recomputed; the
// state passed in is never modified.
type Service interface {
	// Session edits
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*StateOutput, error)
	SetIdentity(ctx context.Context, input *SetIdentityInput) (*StateOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*StateOutput, error)
	SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*StateOutput, error)
	SetClass(ctx context.Context, input *SetClassInput) (*StateOutput, error)
	SetSubclass(ctx context.Context, input *SetSubclassInput) (*StateOutput, error)
	SetSaveProficiencies(ctx context.Context, input *SetSaveProficienciesInput) (*StateOutput, error)
	SetSkillProficiencies(ctx context.Context, input *SetSkillProficienciesInput) (*StateOutput, error)
	SetExpertise(ctx context.Context, input *SetExpertiseInput) (*StateOutput, error)
	SetArmor(ctx context.Context, input *SetArmorInput) (*StateOutput, error)
	SetCombat(ctx context.Context, input *SetCombatInput) (*StateOutput, error)
	SetSpellbook(ctx context.Context, input *SetSpellbookInput) (*StateOutput, error)
	SetChosenSpells(ctx context.Context, input *SetChosenSpellsInput) (*StateOutput, error)
	ApplyRolledScores(ctx context.Context, input *ApplyRolledScoresInput) (*ApplyRolledScoresOutput, error)

	// Reference data
	ResolveAutoProficiencies(ctx context.Context, input *ResolveAutoProficienciesInput) (*ResolveAutoProficienciesOutput, error)
	ListSubclasses(ctx context.Context, input *ListSubclassesInput) (*ListSubclassesOutput, error)
	ListSpellOptions(ctx context.Context, input *ListSpellOptionsInput) (*ListSpellOptionsOutput, error)
	ListCatalog(ctx context.Context, input *ListCatalogInput) (*ListCatalogOutput, error)
	GetClassDetail(ctx context.Context, input *GetClassDetailInput) (*GetClassDetailOutput, error)
	GetFeatureDetail(ctx context.Context, input *GetFeatureDetailInput) (*GetFeatureDetailOutput, error)
	GetSpellDetail(ctx context.Context, input *GetSpellDetailInput) (*GetSpellDetailOutput, error)

	// Export and import
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	Import(ctx context.Context, input *ImportInput) (*StateOutput, error)

	// Named character store
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input *LoadInput) (*StateOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	CheckStore(ctx context.Context, input *CheckStoreInput) (*CheckStoreOutput, error)
}

// StateOutput carries the committed character after an edit
type StateOutput struct {
	Character *dnd5e.CharacterState
}

// NewCharacterInput defines the request for a fresh character
type NewCharacterInput struct {
	Name string // Optional, defaults to "Adventurer"
}

// SetIdentityInput replaces the descriptive identity fields
type SetIdentityInput struct {
	Character    *dnd5e.CharacterState
	Name         string
	Alignment    string
	RaceID       string
	SubraceID    string
	BackgroundID string
}

// SetLevelInput defines the request for changing level. Out of range levels
// are clamped to 1-20.
type SetLevelInput struct {
	Character *dnd5e.CharacterState
	Level     int
}

// SetAbilityScoreInput defines the request for changing one score. Scores
// are clamped to 1-30.
type SetAbilityScoreInput struct {
	Character *dnd5e.CharacterState
	Ability   string
	Score     int
}

// SetClassInput defines the request for changing class. When the class
// changes the subclass is cleared and saving throws reset to the class
// baseline.
type SetClassInput struct {
	Character *dnd5e.CharacterState
	ClassID   string
}

// SetSubclassInput defines the request for choosing a subclass
type SetSubclassInput struct {
	Character  *dnd5e.CharacterState
	SubclassID string
}

// SetSaveProficienciesInput replaces the saving throw proficiencies
type SetSaveProficienciesInput struct {
	Character *dnd5e.CharacterState
	Abilities []string
}

// SetSkillProficienciesInput replaces the skill proficiencies. Expertise
// in skills that are no longer proficient is dropped.
type SetSkillProficienciesInput struct {
	Character *dnd5e.CharacterState
	Skills    []string
}

// SetExpertiseInput replaces expertise; only proficient skills are kept
type SetExpertiseInput struct {
	Character *dnd5e.CharacterState
	Skills    []string
}

// SetArmorInput replaces the armor selection
type SetArmorInput struct {
	Character *dnd5e.CharacterState
	Armor     dnd5e.ArmorSelection
}

// SetCombatInput replaces the free-form combat block
type SetCombatInput struct {
	Character *dnd5e.CharacterState
	Combat    dnd5e.Combat
}

// SetSpellbookInput replaces the spellbook from a raw record
type SetSpellbookInput struct {
	Character *dnd5e.CharacterState
	Raw       any
}

// SetChosenSpellsInput replaces the known/prepared spell selection
type SetChosenSpellsInput struct {
	Character *dnd5e.CharacterState
	SpellIDs  []string
}

// ApplyRolledScoresInput defines the request for rolling new scores
type ApplyRolledScoresInput struct {
	Character *dnd5e.CharacterState
	Method    string // dice.MethodStandard when empty
}

// ApplyRolledScoresOutput carries the new state and the rolls behind it
type ApplyRolledScoresOutput struct {
	Character *dnd5e.CharacterState
	Rolls     []*dice.DiceRoll
}

// ResolveAutoProficienciesInput defines the request for merging granted
// skills into the character's selections
type ResolveAutoProficienciesInput struct {
	Character *dnd5e.CharacterState
}

// ResolveAutoProficienciesOutput carries the merged state. Grants lists
// every resolved grant string by source; Unavailable names the lookups that
// failed and were skipped.
type ResolveAutoProficienciesOutput struct {
	Character   *dnd5e.CharacterState
	Grants      *engine.SkillGrants
	Unavailable []string
}

// ListSubclassesInput defines the request for a class's subclasses
type ListSubclassesInput struct {
	ClassID string
}

// ListSubclassesOutput lists reference and homebrew subclasses
type ListSubclassesOutput struct {
	Subclasses  []dnd5e.ReferenceItem
	Unavailable bool
}

// ListSpellOptionsInput defines the request for the spell picker
type ListSpellOptionsInput struct {
	ClassID    string
	SubclassID string // Optional
}

// ListSpellOptionsOutput lists the merged spell options sorted by label
type ListSpellOptionsOutput struct {
	Spells      []dnd5e.ReferenceItem
	Unavailable bool
}

// Catalogs served by ListCatalog
const (
	CatalogRaces       = "races"
	CatalogClasses     = "classes"
	CatalogBackgrounds = "backgrounds"
)

// CatalogKinds returns the catalogs ListCatalog accepts
func CatalogKinds() []string {
	return []string{CatalogRaces, CatalogClasses, CatalogBackgrounds}
}

// ListCatalogInput defines the request for a reference catalog
type ListCatalogInput struct {
	Kind string
}

// ListCatalogOutput lists a reference catalog. Unavailable is set when the
// reference source could not be reached.
type ListCatalogOutput struct {
	Items       []dnd5e.ReferenceItem
	Unavailable bool
}

// GetClassDetailInput defines the request for a class
type GetClassDetailInput struct {
	ClassID string
}

// GetClassDetailOutput carries the class with homebrew subclasses merged in
type GetClassDetailOutput struct {
	Class *dnd5e.ClassData
}

// GetFeatureDetailInput defines the request for a feature
type GetFeatureDetailInput struct {
	FeatureID string
}

// GetFeatureDetailOutput carries the feature and whether it is homebrew
type GetFeatureDetailOutput struct {
	Feature  *dnd5e.FeatureData
	Homebrew bool
}

// GetSpellDetailInput defines the request for a spell preview
type GetSpellDetailInput struct {
	SpellID string
}

// GetSpellDetailOutput carries the spell and whether it is homebrew
type GetSpellDetailOutput struct {
	Spell    *dnd5e.SpellData
	Homebrew bool
}

// ExportInput defines the request for exporting a character
type ExportInput struct {
	Character *dnd5e.CharacterState
}

// ExportOutput carries the record, its JSON encoding and a file name
type ExportOutput struct {
	Snapshot *dnd5e.Snapshot
	Data     []byte
	FileName string
}

// ImportInput defines the request for importing a JSON record
type ImportInput struct {
	Data []byte
}

// SaveInput defines the request for storing a character under its name
type SaveInput struct {
	Character *dnd5e.CharacterState
}

// SaveOutput describes the stored record
type SaveOutput struct {
	ID      string
	Name    string
	SavedAt time.Time
	Created bool
}

// LoadInput defines the request for loading a stored character
type LoadInput struct {
	Name string
}

// ListInput defines the request for listing stored characters
type ListInput struct{}

// ListOutput carries stored character summaries sorted by name
type ListOutput struct {
	Characters []*Summary
}

// Summary is one stored character
type Summary struct {
	ID      string
	Name    string
	Level   int
	Class   string
	SavedAt time.Time
}

// DeleteInput defines the request for deleting a stored character
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the response for deleting a stored character
type DeleteOutput struct{}

// CheckStoreInput defines the request for checking the character store.
// Repair removes undecodable records and fixes the name index.
type CheckStoreInput struct {
	Repair bool
}

// CheckStoreOutput reports the damaged names found by a check
type CheckStoreOutput struct {
	Checked   int
	Corrupted []string
	Unindexed []string
	Dangling  []string
	Repaired  bool
}
