// Package summary derives the aggregate counts and display orderings shown
// on the rewards and badges panels.
package summary

import (
	"sort"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// RewardsSummary is the headline counts for the rewards panel.
type RewardsSummary struct {
	Total    int            `json:"total"`
	Unlocked int            `json:"unlocked"`
	Locked   int            `json:"locked"`
	ByType   map[string]int `json:"by_type"`
}

// BadgesSummary is the headline counts for the badges panel.
type BadgesSummary struct {
	Total    int            `json:"total"`
	Unlocked int            `json:"unlocked"`
	ByRarity map[string]int `json:"by_rarity"`
}

// SummarizeRewards counts rewards by lock state and tier.
func SummarizeRewards(rewards []domain.Reward) RewardsSummary {
	s := RewardsSummary{ByType: map[string]int{}}
	for _, r := range rewards {
		s.Total++
		if r.IsLocked {
			s.Locked++
		} else {
			s.Unlocked++
		}
		s.ByType[r.RewardType]++
	}
	return s
}

// SummarizeBadges counts badges by status and rarity.
func SummarizeBadges(badges []domain.Badge) BadgesSummary {
	s := BadgesSummary{ByRarity: map[string]int{}}
	for _, b := range badges {
		s.Total++
		if b.Status == domain.BadgeUnlocked {
			s.Unlocked++
		}
		s.ByRarity[b.Rarity]++
	}
	return s
}

// SortRewards orders rewards for display: highest tier first, stable within
// a tier so the aggregation order (and therefore source precedence) holds.
// Returns a new slice; the input is never reordered in place.
func SortRewards(rewards []domain.Reward) []domain.Reward {
	out := make([]domain.Reward, len(rewards))
	copy(out, rewards)
	sort.SliceStable(out, func(i, j int) bool {
		return domain.RewardTypePriority(out[i].RewardType) > domain.RewardTypePriority(out[j].RewardType)
	})
	return out
}
