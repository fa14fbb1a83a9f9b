package summary

import "github.com/fightclub-net/fightclub/internal/domain"

// Filters are three-state: a nil field is unset and passes everything.
// Re-toggling a field to the value it already holds clears it back to
// unset — the panel's chips behave as toggles, not setters.

// RewardFilter selects rewards by lock state and tier. Fields combine
// with AND.
type RewardFilter struct {
	Locked     *bool
	RewardType *string
}

// ToggleLocked sets the lock-state filter, or clears it when it already
// holds the given value.
func (f *RewardFilter) ToggleLocked(locked bool) {
	if f.Locked != nil && *f.Locked == locked {
		f.Locked = nil
		return
	}
	f.Locked = &locked
}

// ToggleType sets the tier filter, or clears it when it already holds the
// given value.
func (f *RewardFilter) ToggleType(rewardType string) {
	if f.RewardType != nil && *f.RewardType == rewardType {
		f.RewardType = nil
		return
	}
	f.RewardType = &rewardType
}

// Match reports whether a reward passes every set field.
func (f RewardFilter) Match(r domain.Reward) bool {
	if f.Locked != nil && r.IsLocked != *f.Locked {
		return false
	}
	if f.RewardType != nil && r.RewardType != *f.RewardType {
		return false
	}
	return true
}

// Apply returns the rewards passing the filter, preserving order.
func (f RewardFilter) Apply(rewards []domain.Reward) []domain.Reward {
	out := make([]domain.Reward, 0, len(rewards))
	for _, r := range rewards {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// BadgeFilter selects badges by status, rarity, category, and earning
// archetype. Fields combine with AND.
type BadgeFilter struct {
	Status    *domain.BadgeStatus
	Rarity    *string
	Category  *string
	Archetype *string
}

// ToggleStatus sets or clears the status filter.
func (f *BadgeFilter) ToggleStatus(status domain.BadgeStatus) {
	if f.Status != nil && *f.Status == status {
		f.Status = nil
		return
	}
	f.Status = &status
}

// ToggleRarity sets or clears the rarity filter.
func (f *BadgeFilter) ToggleRarity(rarity string) {
	if f.Rarity != nil && *f.Rarity == rarity {
		f.Rarity = nil
		return
	}
	f.Rarity = &rarity
}

// ToggleCategory sets or clears the category filter.
func (f *BadgeFilter) ToggleCategory(category string) {
	if f.Category != nil && *f.Category == category {
		f.Category = nil
		return
	}
	f.Category = &category
}

// ToggleArchetype sets or clears the archetype filter.
func (f *BadgeFilter) ToggleArchetype(archetype string) {
	if f.Archetype != nil && *f.Archetype == archetype {
		f.Archetype = nil
		return
	}
	f.Archetype = &archetype
}

// Match reports whether a badge passes every set field.
func (f BadgeFilter) Match(b domain.Badge) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Rarity != nil && b.Rarity != *f.Rarity {
		return false
	}
	if f.Category != nil && b.Category != *f.Category {
		return false
	}
	if f.Archetype != nil {
		earned := false
		for _, e := range b.EarnedBy {
			if e.Archetype == *f.Archetype {
				earned = true
				break
			}
		}
		if !earned {
			return false
		}
	}
	return true
}

// Apply returns the badges passing the filter, preserving order.
func (f BadgeFilter) Apply(badges []domain.Badge) []domain.Badge {
	out := make([]domain.Badge, 0, len(badges))
	for _, b := range badges {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}
