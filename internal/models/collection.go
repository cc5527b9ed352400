package models

// Collection tracks the characters a Discord user has unlocked
type Collection struct {
	// OwnerID is the Discord user ID of the collector
	OwnerID string

	// UnlockedIDs are the character IDs pulled so far
	UnlockedIDs []string

	// PacksLeft is the number of packs the owner can still open
	PacksLeft int
}

// Has reports whether the character is already unlocked
func (c *Collection) Has(characterID string) bool {
	for _, id := range c.UnlockedIDs {
		if id == characterID {
			return true
		}
	}
	return false
}
