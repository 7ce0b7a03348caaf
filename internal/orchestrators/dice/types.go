package dice

// DiceRoll is the outcome of one roll. Dice holds the kept dice and Dropped
// the ones discarded by the rolling method.
type DiceRoll struct {
	RollID      string
	Notation    string
	Dice        []int
	Dropped     []int
	Total       int
	Description string
}

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *DiceRoll
}

// RollAbilityScoresInput defines the request for rolling a set of ability scores
type RollAbilityScoresInput struct {
	Method string // "4d6_drop_lowest" or "3d6"
}

// RollAbilityScoresOutput defines the response for rolling ability scores.
// Rolls are in canonical ability order.
type RollAbilityScoresOutput struct {
	Method string
	Rolls  []*DiceRoll
}
