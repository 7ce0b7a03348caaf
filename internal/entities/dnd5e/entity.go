package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the toolkit entity type of a character
const EntityTypeCharacter = "character"

// GetID returns the trimmed character name, which identifies a saved
// character
func (c *CharacterState) GetID() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Name)
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterState) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*CharacterState)(nil)
