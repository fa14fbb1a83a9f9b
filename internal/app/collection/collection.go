// Package collection merges the partitioned JSON tables of the data repo
// into unified lists and joins reward references to their full records.
// All functions are pure: partial inputs produce partial outputs, never
// errors — a partition that failed to load arrives here as an empty slice.
package collection

import "github.com/fightclub-net/fightclub/internal/domain"

// Aggregate concatenates sources in the order given. Order is significant:
// the caller's source order is the display precedence (in-progress before
// not-started before failed).
//
// perSourceCap > 0 front-slices each source before concatenation.
// totalCap > 0 truncates the combined result. Zero means uncapped.
func Aggregate[T any](sources [][]T, perSourceCap, totalCap int) []T {
	var out []T
	for _, src := range sources {
		if perSourceCap > 0 && len(src) > perSourceCap {
			src = src[:perSourceCap]
		}
		out = append(out, src...)
	}
	if totalCap > 0 && len(out) > totalCap {
		out = out[:totalCap]
	}
	return out
}

// ResolveRewards joins reference stubs against the unified reward pool.
// The result is positionally aligned with refs: one output per input, in
// input order. A ref with no pool match yields the zero Reward rather than
// shrinking the slice — callers filter placeholders with IsZero.
//
// Matching is exact and case-sensitive on reward_id. If the pool carries
// duplicate ids (the source invariant says it won't, but tolerate it), the
// first match in pool order wins.
func ResolveRewards(refs []domain.RewardRef, pool []domain.Reward) []domain.Reward {
	out := make([]domain.Reward, len(refs))
	for i, ref := range refs {
		for _, reward := range pool {
			if reward.RewardID == ref.RewardID {
				out[i] = reward
				break
			}
		}
	}
	return out
}

// CompactRewards drops placeholder slots left by unresolvable references.
func CompactRewards(rewards []domain.Reward) []domain.Reward {
	out := make([]domain.Reward, 0, len(rewards))
	for _, r := range rewards {
		if !r.IsZero() {
			out = append(out, r)
		}
	}
	return out
}
