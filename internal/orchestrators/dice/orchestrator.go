// Package dice implements ability score rolling for character creation
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/pkg/idgen"
)

const (
	// Dice rolling methods
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"

	// Standard ability score dice notation
	AbilityScoreNotation = "4d6"

	idPrefixRoll = "roll"
)

var (
	// Regex for parsing simple dice notation like "2d6", "1d20", "3d8"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
)

// Methods lists the supported ability score methods
func Methods() []string {
	return []string{MethodStandard, MethodClassic}
}

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// RollAbilityScores rolls one score per ability
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		idGen: cfg.IDGenerator,
	}, nil
}

// NewDefault creates a dice orchestrator with UUID roll ids
func NewDefault() Service {
	return &orchestrator{idGen: idgen.NewUUID(idPrefixRoll)}
}

// parseDiceNotation parses simple dice notation like "2d6" and returns count and size
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

// rollDiceWithToolkit rolls with rpg-toolkit and returns kept dice, dropped
// dice and the kept total
func rollDiceWithToolkit(count, size, dropLowest int) ([]int, []int, int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()

	// The toolkit only exposes individual dice through the description,
	// formatted as "+2d6[3,4]=7"
	individualDice := parseDescriptionDice(roll.GetDescription())
	if len(individualDice) != count {
		return nil, nil, 0, errors.Newf(errors.CodeInternal, "unexpected roll description %q", roll.GetDescription())
	}

	if dropLowest <= 0 || len(individualDice) <= dropLowest {
		return individualDice, []int{}, total, nil
	}

	kept, dropped := dropLowestDice(individualDice, dropLowest)
	keptTotal := 0
	for _, d := range kept {
		keptTotal += d
	}
	return kept, dropped, keptTotal, nil
}

func parseDescriptionDice(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int
	for _, ds := range strings.Split(description[start+1:end], ",") {
		if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
			values = append(values, d)
		}
	}
	return values
}

// dropLowestDice removes the n lowest dice. Kept dice stay in rolled order.
func dropLowestDice(values []int, n int) (kept, dropped []int) {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	drop := make(map[int]bool, n)
	for _, idx := range order[:n] {
		drop[idx] = true
		dropped = append(dropped, values[idx])
	}
	for i, v := range values {
		if !drop[i] {
			kept = append(kept, v)
		}
	}
	return kept, dropped
}

// RollDice rolls dice using the specified notation
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	individualDice, dropped, total, err := rollDiceWithToolkit(count, size, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := &DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    input.Notation,
		Dice:        individualDice,
		Dropped:     dropped,
		Total:       total,
		Description: input.Description,
	}

	slog.DebugContext(ctx, "Dice rolled",
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{Roll: roll}, nil
}

// RollAbilityScores rolls six ability scores with the requested method
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	method := MethodStandard
	if input != nil && input.Method != "" {
		method = input.Method
	}

	var notation string
	dropLowest := 0
	switch method {
	case MethodStandard:
		notation = AbilityScoreNotation
		dropLowest = 1
	case MethodClassic:
		notation = "3d6"
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	count, size, err := parseDiceNotation(notation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ability score notation")
	}

	rolls := make([]*DiceRoll, 0, dnd5e.AbilityCount)
	for _, ability := range dnd5e.AllAbilities() {
		kept, dropped, total, err := rollDiceWithToolkit(count, size, dropLowest)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", ability)
		}

		rolls = append(rolls, &DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    notation,
			Dice:        kept,
			Dropped:     dropped,
			Total:       total,
			Description: fmt.Sprintf("%s (%s)", ability, method),
		})
	}

	slog.InfoContext(ctx, "Ability scores rolled",
		"method", method,
		"rolls_count", len(rolls),
	)

	return &RollAbilityScoresOutput{
		Method: method,
		Rolls:  rolls,
	}, nil
}

// ScoresFromRolls assigns roll totals to abilities in canonical order.
// Abilities without a roll keep their baseline score.
func ScoresFromRolls(rolls []*DiceRoll) dnd5e.AbilityScores {
	scores := dnd5e.DefaultAbilityScores()
	for i, a := range dnd5e.AllAbilities() {
		if i >= len(rolls) || rolls[i] == nil {
			continue
		}
		scores[a] = rolls[i].Total
	}
	return scores
}
