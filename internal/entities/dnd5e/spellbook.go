package dnd5e

import "strconv"

// Spell level bounds. Level 0 holds cantrips and has no slots.
const (
	CantripLevel    = 0
	MinSlotLevel    = 1
	MaxSpellLevel   = 9
	SpellLevelCount = MaxSpellLevel + 1
)

// Keys of the raw spellbook record
const (
	SpellbookKeySlots           = "slots"
	SpellbookKeySlotsUsed       = "slots_used"
	SpellbookKeySlotsUsedLegacy = "slotsUsed"
	SpellbookKeyPrepared        = "prepared"
)

// SpellbookState is spell slot and preparation bookkeeping. Every array is
// indexed by spell level; Slots[0] and SlotsUsed[0] are always zero.
type SpellbookState struct {
	Slots     [SpellLevelCount]int
	SlotsUsed [SpellLevelCount]int
	Prepared  [SpellLevelCount][]string
}

// NewSpellbookState returns an empty spellbook with every prepared list
// allocated.
func NewSpellbookState() SpellbookState {
	var sb SpellbookState
	for l := range sb.Prepared {
		sb.Prepared[l] = []string{}
	}
	return sb
}

// Raw returns the spellbook in the record form persisted with a character.
// Every level is written, including empty ones.
func (sb SpellbookState) Raw() map[string]any {
	slots := make(map[string]any, MaxSpellLevel)
	used := make(map[string]any, MaxSpellLevel)
	for l := MinSlotLevel; l <= MaxSpellLevel; l++ {
		key := strconv.Itoa(l)
		slots[key] = sb.Slots[l]
		used[key] = sb.SlotsUsed[l]
	}

	prepared := make(map[string]any, SpellLevelCount)
	for l := CantripLevel; l <= MaxSpellLevel; l++ {
		ids := make([]any, len(sb.Prepared[l]))
		for i, id := range sb.Prepared[l] {
			ids[i] = id
		}
		prepared[strconv.Itoa(l)] = ids
	}

	return map[string]any{
		SpellbookKeySlots:     slots,
		SpellbookKeySlotsUsed: used,
		SpellbookKeyPrepared:  prepared,
	}
}

// Overspent lists the slot levels where more slots are used than exist.
// Nothing clamps this; it is only reported.
func (sb SpellbookState) Overspent() []int {
	var levels []int
	for l := MinSlotLevel; l <= MaxSpellLevel; l++ {
		if sb.SlotsUsed[l] > sb.Slots[l] {
			levels = append(levels, l)
		}
	}
	return levels
}

// Remaining returns unspent slots at a level, never below zero
func (sb SpellbookState) Remaining(level int) int {
	if level < MinSlotLevel || level > MaxSpellLevel {
		return 0
	}
	if r := sb.Slots[level] - sb.SlotsUsed[level]; r > 0 {
		return r
	}
	return 0
}
