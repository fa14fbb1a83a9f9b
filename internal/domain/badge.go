package domain

// BadgeStatus is the lock state of a badge.
type BadgeStatus string

const (
	BadgeLocked   BadgeStatus = "locked"
	BadgeUnlocked BadgeStatus = "unlocked"
)

// Badge rarities, lowest to highest.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// BadgeEarner records which alter ego earned a badge and when.
type BadgeEarner struct {
	Archetype string `json:"archetype"`
	Date      Date   `json:"date"`
}

// Badge is one entry from the badges catalog.
type Badge struct {
	BadgeID  string        `json:"badge_id"`
	Title    string        `json:"title"`
	Rarity   string        `json:"rarity"`
	Category string        `json:"category"`
	Status   BadgeStatus   `json:"status"`
	EarnedBy []BadgeEarner `json:"earned_by,omitempty"`
}

// BadgesDocument is the envelope of the badges catalog file.
type BadgesDocument struct {
	Badges []Badge `json:"badges"`
}
