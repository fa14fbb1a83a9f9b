package domain

// Reward tiers, lowest to highest. Unknown tiers sort below street.
const (
	RewardStreet    = "street"
	RewardVanguard  = "vanguard"
	RewardLegendary = "legendary"
	RewardApex      = "apex"
	RewardMythic    = "mythic"
)

// rewardTypePriority is the fixed display ordering for reward tiers.
var rewardTypePriority = map[string]int{
	RewardMythic:    5,
	RewardApex:      4,
	RewardLegendary: 3,
	RewardVanguard:  2,
	RewardStreet:    1,
}

// RewardTypePriority returns the sort weight for a reward tier.
// Unrecognized tiers get 0 and land at the end of descending sorts.
func RewardTypePriority(rewardType string) int {
	return rewardTypePriority[rewardType]
}

// Reward is one reward document from the locked/unlocked partitions.
type Reward struct {
	RewardID             string   `json:"reward_id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	AssociatedMissionIDs []string `json:"associated_mission_ids"`
	RewardType           string   `json:"reward_type"`
	IsLocked             bool     `json:"is_locked"`
	BadgeIcon            string   `json:"badge_icon,omitempty"`
}

// IsZero reports whether this is the empty placeholder emitted for an
// unresolvable reference. Callers filter on it after resolution.
func (r Reward) IsZero() bool {
	return r.RewardID == ""
}

// RewardsDocument is the envelope of a rewards partition file.
type RewardsDocument struct {
	Rewards []Reward `json:"rewards"`
}
