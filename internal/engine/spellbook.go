package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// NormalizeSpellbook repairs a raw spellbook record into a well formed
// SpellbookState. It never fails: keys outside the level range, values that
// are not integers and prepared entries that are not lists are dropped, and
// every level ends up present. Slot counts must be non-negative integers but
// have no upper clamp.
//
// raw is usually decoded JSON or YAML. A SpellbookState is also accepted, so
// normalizing twice gives the same result as normalizing once.
func NormalizeSpellbook(raw any) dnd5e.SpellbookState {
	switch v := raw.(type) {
	case dnd5e.SpellbookState:
		raw = v.Raw()
	case *dnd5e.SpellbookState:
		if v == nil {
			return dnd5e.NewSpellbookState()
		}
		raw = v.Raw()
	}

	sb := dnd5e.NewSpellbookState()
	m, ok := asStringMap(raw)
	if !ok {
		return sb
	}

	normalizeSlots(&sb.Slots, m[dnd5e.SpellbookKeySlots])
	// The canonical key is applied last so it wins over the legacy one.
	normalizeSlots(&sb.SlotsUsed, m[dnd5e.SpellbookKeySlotsUsedLegacy])
	normalizeSlots(&sb.SlotsUsed, m[dnd5e.SpellbookKeySlotsUsed])
	normalizePrepared(&sb.Prepared, m[dnd5e.SpellbookKeyPrepared])

	return sb
}

func normalizeSlots(dst *[dnd5e.SpellLevelCount]int, raw any) {
	m, ok := asStringMap(raw)
	if !ok {
		return
	}
	for _, key := range sortedKeys(m) {
		level, ok := parseLevel(key, dnd5e.MinSlotLevel)
		if !ok {
			continue
		}
		if n, ok := parseInt(m[key]); ok && n >= 0 {
			dst[level] = n
		}
	}
}

func normalizePrepared(dst *[dnd5e.SpellLevelCount][]string, raw any) {
	m, ok := asStringMap(raw)
	if !ok {
		return
	}
	for _, key := range sortedKeys(m) {
		level, ok := parseLevel(key, dnd5e.CantripLevel)
		if !ok {
			continue
		}
		items, ok := asSlice(m[key])
		if !ok {
			continue
		}

		ids := []string{}
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			id, ok := spellIdentifier(item)
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		dst[level] = ids
	}
}

func parseLevel(key string, minLevel int) (int, bool) {
	level, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || level < minLevel || level > dnd5e.MaxSpellLevel {
		return 0, false
	}
	return level, true
}

// intLimit is the first float past the int range
const intLimit = float64(math.MaxInt) + 1

// parseInt accepts Go integers, integral floats, json.Number and numeric
// strings. Values outside the int range are rejected.
func parseInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			if i > math.MaxInt || i < math.MinInt {
				return 0, false
			}
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > math.MaxInt || i < math.MinInt {
			return 0, false
		}
		return int(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		return integralFloat(rv.Float())
	default:
		return 0, false
	}
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f >= intLimit || f < -intLimit {
		return 0, false
	}
	return int(f), true
}

// spellIdentifier coerces one prepared entry to a spell index
func spellIdentifier(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		s = strings.TrimSpace(s)
		return s, s != ""
	case bool:
		return strconv.FormatBool(s), true
	}

	if n, ok := parseInt(v); ok {
		return strconv.Itoa(n), true
	}

	if m, ok := asStringMap(v); ok {
		for _, key := range []string{"index", "id"} {
			if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}

// asStringMap converts any map with string or integer keys to map[string]any
func asStringMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		var key string
		switch k := iter.Key().Interface().(type) {
		case string:
			key = k
		default:
			n, ok := parseInt(k)
			if !ok {
				continue
			}
			key = strconv.Itoa(n)
		}
		out[key] = iter.Value().Interface()
	}
	return out, true
}

func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
