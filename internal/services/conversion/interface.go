package conversion

import (
	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// SnapshotConverter handles conversions between the in-memory character and
// its exported record. It provides a centralized location for all conversion
// logic, making it easier to maintain and test.
type SnapshotConverter interface {
	// ToSnapshot projects a character onto its export record. Nothing is
	// recomputed; the current Derived values are copied as they are.
	ToSnapshot(state *dnd5e.CharacterState) *dnd5e.Snapshot

	// FromSnapshot rebuilds a character from a record. The spellbook is
	// normalized and the derived values are recomputed from the raw fields;
	// the record's own derived values are ignored.
	FromSnapshot(snap *dnd5e.Snapshot) *dnd5e.CharacterState

	// Marshal encodes a record as indented JSON
	Marshal(snap *dnd5e.Snapshot) ([]byte, error)

	// Unmarshal decodes a JSON record field by field. A field with the wrong
	// shape is dropped rather than failing the whole record.
	Unmarshal(data []byte) (*dnd5e.Snapshot, error)
}
