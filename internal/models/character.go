package models

// Rarity represents how rare a collectible character is
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// IsValid reports whether the rarity is one of the known values
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Color returns the embed color used to display the rarity
func (r Rarity) Color() int {
	switch r {
	case RarityRare:
		return 0x3b82f6
	case RarityEpic:
		return 0x9333ea
	case RarityLegendary:
		return 0xeab308
	default:
		return 0x4b5563
	}
}

// Tier represents the power ranking of a character
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// IsValid reports whether the tier is one of the known values
func (t Tier) IsValid() bool {
	switch t {
	case TierS, TierA, TierB, TierC:
		return true
	}
	return false
}

// Badge returns the display badge for the tier
func (t Tier) Badge() string {
	switch t {
	case TierS:
		return "🔥 S-Tier"
	case TierA:
		return "⚡ A-Tier"
	case TierB:
		return "⭐ B-Tier"
	case TierC:
		return "⬇️ C-Tier"
	default:
		return string(t)
	}
}

// Character is a collectible card
type Character struct {
	// ID is the unique identifier of the character
	ID string `json:"id" yaml:"id"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// School is the team the character plays for
	School string `json:"school" yaml:"school"`

	// Year is the school year of the character
	Year int `json:"year" yaml:"year"`

	// Position is the playing position label, e.g. "Setter"
	Position string `json:"position" yaml:"position"`

	Rarity Rarity `json:"rarity" yaml:"rarity"`
	Tier   Tier   `json:"tier" yaml:"tier"`

	// Image is a reference to the card artwork
	Image string `json:"image" yaml:"image"`

	Stats Stats `json:"stats" yaml:"stats"`
}
