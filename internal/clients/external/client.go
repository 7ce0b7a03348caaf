// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	internalDnd5e "github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// DefaultBaseURL is the public SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// generateSlug creates the API index for a display name, e.g. "Dwarven Resilience" -> "dwarven-resilience"
func generateSlug(s string) string {
	slug := strings.ToLower(strings.ReplaceAll(s, "'", ""))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client defines the interface for reference-data lookups. Unknown ids
// resolve to StatusEmpty and transport failures to StatusUnavailable; no
// method returns a bare error.
type Client interface {
	// GetRace fetches a race with its traits, starting proficiencies and subraces
	GetRace(ctx context.Context, raceID string) Result[*internalDnd5e.RaceData]

	// GetSubrace fetches a subrace with its racial traits
	GetSubrace(ctx context.Context, subraceID string) Result[*internalDnd5e.SubraceData]

	// GetClass fetches a class with its saving throws and subclass list
	GetClass(ctx context.Context, classID string) Result[*internalDnd5e.ClassData]

	// GetSubclass fetches a subclass with its features and bonus spells
	GetSubclass(ctx context.Context, subclassID string) Result[*internalDnd5e.SubclassData]

	// GetBackground fetches a background with its starting proficiencies
	GetBackground(ctx context.Context, backgroundID string) Result[*internalDnd5e.BackgroundData]

	// GetTrait fetches a racial trait with the proficiencies it grants
	GetTrait(ctx context.Context, traitID string) Result[*internalDnd5e.TraitData]

	// GetFeature fetches a class or subclass feature
	GetFeature(ctx context.Context, featureID string) Result[*internalDnd5e.FeatureData]

	// GetSpell fetches spell details
	GetSpell(ctx context.Context, spellID string) Result[*internalDnd5e.SpellData]

	// ListRaces returns the race catalog
	ListRaces(ctx context.Context) Result[[]internalDnd5e.ReferenceItem]

	// ListClasses returns the class catalog
	ListClasses(ctx context.Context) Result[[]internalDnd5e.ReferenceItem]

	// ListBackgrounds returns the background catalog
	ListBackgrounds(ctx context.Context) Result[[]internalDnd5e.ReferenceItem]

	// ListSubclasses returns the subclasses of a class
	ListSubclasses(ctx context.Context, classID string) Result[[]internalDnd5e.ReferenceItem]

	// ListClassSpells returns every spell on a class list
	ListClassSpells(ctx context.Context, classID string) Result[[]internalDnd5e.ReferenceItem]

	// ListSubclassSpells returns the bonus spells a subclass grants
	ListSubclassSpells(ctx context.Context, subclassID string) Result[[]internalDnd5e.ReferenceItem]
}

type client struct {
	dnd5eClient dnd5e.Interface
	srd         *srdClient
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return errors.InvalidArgumentf("base url %q must be http or https", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout must not be negative")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Create the base D&D 5e API client
	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
		srd:         newSRDClient(httpClient, cfg.BaseURL),
	}, nil
}

// isNotFound reports whether a dnd5e-api error means the record does not exist
func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}

// failed turns a lookup error into an Empty or Unavailable result
func failed[T any](ctx context.Context, kind, id string, err error) Result[T] {
	if !errors.IsUnavailable(err) && isNotFound(err) {
		slog.DebugContext(ctx, "Reference data not found", "kind", kind, "id", id)
		return Empty[T]()
	}

	slog.WarnContext(ctx, "Reference data unavailable", "kind", kind, "id", id, "error", err)
	return Unavailable[T](errors.WrapWithCode(err, errors.CodeUnavailable,
		fmt.Sprintf("failed to get %s %s", kind, id)).WithMeta("id", id))
}

func (c *client) GetRace(ctx context.Context, raceID string) Result[*internalDnd5e.RaceData] {
	if raceID == "" {
		return Empty[*internalDnd5e.RaceData]()
	}

	race, err := c.dnd5eClient.GetRace(raceID)
	if err != nil {
		return failed[*internalDnd5e.RaceData](ctx, "race", raceID, err)
	}
	if race == nil {
		return Empty[*internalDnd5e.RaceData]()
	}

	return Present(convertRace(race))
}

func (c *client) GetSubrace(ctx context.Context, subraceID string) Result[*internalDnd5e.SubraceData] {
	if subraceID == "" {
		return Empty[*internalDnd5e.SubraceData]()
	}

	subrace, found, err := c.srd.getSubrace(ctx, subraceID)
	if err != nil {
		return failed[*internalDnd5e.SubraceData](ctx, "subrace", subraceID, err)
	}
	if !found {
		return Empty[*internalDnd5e.SubraceData]()
	}

	return Present(convertSubrace(subrace))
}

func (c *client) GetClass(ctx context.Context, classID string) Result[*internalDnd5e.ClassData] {
	if classID == "" {
		return Empty[*internalDnd5e.ClassData]()
	}

	class, err := c.dnd5eClient.GetClass(classID)
	if err != nil {
		return failed[*internalDnd5e.ClassData](ctx, "class", classID, err)
	}
	if class == nil {
		return Empty[*internalDnd5e.ClassData]()
	}

	classData := convertClass(class)

	// The subclass list is a separate resource; a class without it is still usable
	subclasses := c.ListSubclasses(ctx, classID)
	classData.Subclasses = subclasses.ValueOr([]internalDnd5e.ReferenceItem{})

	return Present(classData)
}

func (c *client) GetSubclass(ctx context.Context, subclassID string) Result[*internalDnd5e.SubclassData] {
	if subclassID == "" {
		return Empty[*internalDnd5e.SubclassData]()
	}

	subclass, found, err := c.srd.getSubclass(ctx, subclassID)
	if err != nil {
		return failed[*internalDnd5e.SubclassData](ctx, "subclass", subclassID, err)
	}
	if !found {
		return Empty[*internalDnd5e.SubclassData]()
	}

	subclassData := convertSubclass(subclass)

	levels, err := c.srd.getSubclassLevels(ctx, subclassID)
	if err != nil {
		// Log error but continue with partial data
		slog.WarnContext(ctx, "Failed to fetch subclass levels", "subclass", subclassID, "error", err)
	}
	subclassData.Features = convertSubclassLevels(levels, subclass.Class.Name)

	return Present(subclassData)
}

func (c *client) GetBackground(ctx context.Context, backgroundID string) Result[*internalDnd5e.BackgroundData] {
	if backgroundID == "" {
		return Empty[*internalDnd5e.BackgroundData]()
	}

	background, err := c.dnd5eClient.GetBackground(backgroundID)
	if err != nil {
		return failed[*internalDnd5e.BackgroundData](ctx, "background", backgroundID, err)
	}
	if background == nil {
		return Empty[*internalDnd5e.BackgroundData]()
	}

	return Present(convertBackground(background))
}

func (c *client) GetTrait(ctx context.Context, traitID string) Result[*internalDnd5e.TraitData] {
	if traitID == "" {
		return Empty[*internalDnd5e.TraitData]()
	}

	trait, found, err := c.srd.getTrait(ctx, traitID)
	if err != nil {
		return failed[*internalDnd5e.TraitData](ctx, "trait", traitID, err)
	}
	if !found {
		return Empty[*internalDnd5e.TraitData]()
	}

	return Present(&internalDnd5e.TraitData{
		ID:            trait.Index,
		Name:          trait.Name,
		Description:   strings.Join(trait.Desc, "\n"),
		Proficiencies: referenceNames(trait.Proficiencies),
	})
}

func (c *client) GetFeature(ctx context.Context, featureID string) Result[*internalDnd5e.FeatureData] {
	if featureID == "" {
		return Empty[*internalDnd5e.FeatureData]()
	}

	feature, err := c.dnd5eClient.GetFeature(featureID)
	if err != nil {
		return failed[*internalDnd5e.FeatureData](ctx, "feature", featureID, err)
	}
	if feature == nil {
		return Empty[*internalDnd5e.FeatureData]()
	}

	return Present(convertFeature(feature))
}

func (c *client) GetSpell(ctx context.Context, spellID string) Result[*internalDnd5e.SpellData] {
	if spellID == "" {
		return Empty[*internalDnd5e.SpellData]()
	}

	spell, err := c.dnd5eClient.GetSpell(spellID)
	if err != nil {
		return failed[*internalDnd5e.SpellData](ctx, "spell", spellID, err)
	}
	if spell == nil {
		return Empty[*internalDnd5e.SpellData]()
	}

	return Present(convertSpell(spell))
}

func (c *client) ListRaces(ctx context.Context) Result[[]internalDnd5e.ReferenceItem] {
	slog.DebugContext(ctx, "Calling D&D 5e API to list races")
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "races", "", err)
	}
	return listResult(convertReferenceItems(refs))
}

func (c *client) ListClasses(ctx context.Context) Result[[]internalDnd5e.ReferenceItem] {
	slog.DebugContext(ctx, "Calling D&D 5e API to list classes")
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "classes", "", err)
	}
	return listResult(convertReferenceItems(refs))
}

func (c *client) ListBackgrounds(ctx context.Context) Result[[]internalDnd5e.ReferenceItem] {
	slog.DebugContext(ctx, "Calling D&D 5e API to list backgrounds")
	refs, err := c.dnd5eClient.ListBackgrounds()
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "backgrounds", "", err)
	}
	return listResult(convertReferenceItems(refs))
}

func (c *client) ListSubclasses(ctx context.Context, classID string) Result[[]internalDnd5e.ReferenceItem] {
	if classID == "" {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}

	list, found, err := c.srd.listClassSubclasses(ctx, classID)
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "subclasses", classID, err)
	}
	if !found {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}

	return listResult(convertSRDReferences(list.Results))
}

func (c *client) ListClassSpells(ctx context.Context, classID string) Result[[]internalDnd5e.ReferenceItem] {
	if classID == "" {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}

	refs, err := c.dnd5eClient.ListSpells(&dnd5e.ListSpellsInput{Class: classID})
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "class spells", classID, err)
	}
	slog.DebugContext(ctx, "Got class spell references", "class", classID, "count", len(refs))

	return listResult(convertReferenceItems(refs))
}

func (c *client) ListSubclassSpells(ctx context.Context, subclassID string) Result[[]internalDnd5e.ReferenceItem] {
	if subclassID == "" {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}

	subclass, found, err := c.srd.getSubclass(ctx, subclassID)
	if err != nil {
		return failed[[]internalDnd5e.ReferenceItem](ctx, "subclass spells", subclassID, err)
	}
	if !found {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}

	spells := make([]srdReference, 0, len(subclass.Spells))
	for _, s := range subclass.Spells {
		spells = append(spells, s.Spell)
	}

	return listResult(convertSRDReferences(spells))
}

// listResult reports an empty list as Empty
func listResult(items []internalDnd5e.ReferenceItem) Result[[]internalDnd5e.ReferenceItem] {
	if len(items) == 0 {
		return Empty[[]internalDnd5e.ReferenceItem]()
	}
	return Present(items)
}
