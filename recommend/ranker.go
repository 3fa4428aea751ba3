package recommend

import (
	"sort"
	"strings"
)

// Item is the minimal view of a rankable piece of content: an identifier,
// its tags, and an optional view count (nil when statistics were missing).
type Item struct {
	ID        string
	Tags      []string
	ViewCount *int
}

// Ranked pairs an item with its computed score. Scores are transient and
// recomputed on every call; nothing here is persisted.
type Ranked struct {
	Item  Item
	Score int
}

// TagOverlap counts the tags shared between the two items, comparing
// case-insensitively. This is the primary relevance signal.
func TagOverlap(current, candidate Item) int {
	currentTags := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		currentTags[strings.ToLower(t)] = struct{}{}
	}

	overlap := 0
	for _, t := range candidate.Tags {
		if _, ok := currentTags[strings.ToLower(t)]; ok {
			overlap++
		}
	}
	return overlap
}

// ViewBonus converts a view count into score points: floor(views/divisor)
// for a present, non-negative count, else 0.
func ViewBonus(viewCount *int, divisor int) int {
	if divisor <= 0 || viewCount == nil || *viewCount < 0 {
		return 0
	}
	return *viewCount / divisor
}

// Score is the full relevance score: tag overlap plus the view bonus. The
// bonus is additive, so a heavily viewed candidate can outrank a better tag
// match once its views exceed ~divisor per overlap point. That bias toward
// popular content is the intended behavior, not an accident.
func Score(current, candidate Item, viewBonusDivisor int) int {
	return TagOverlap(current, candidate) + ViewBonus(candidate.ViewCount, viewBonusDivisor)
}

// Rank produces the shortlist of candidates most related to current, ordered
// by descending score with ties keeping pool order, truncated to size.
//
// The current item itself, tag-less candidates, and candidates sharing no
// tag with current are excluded before scoring, so the view bonus only ever
// boosts candidates that already matched on tags; it never surfaces
// unrelated content on popularity alone.
//
// A nil current item or an empty pool yields an empty shortlist, not an error.
func Rank(current *Item, pool []Item, size, viewBonusDivisor int) []Ranked {
	if current == nil || len(pool) == 0 || size <= 0 {
		return []Ranked{}
	}

	scored := make([]Ranked, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == current.ID {
			continue
		}
		if len(candidate.Tags) == 0 {
			continue
		}
		overlap := TagOverlap(*current, candidate)
		if overlap == 0 {
			continue
		}
		score := overlap + ViewBonus(candidate.ViewCount, viewBonusDivisor)
		if score > 0 {
			scored = append(scored, Ranked{Item: candidate, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > size {
		scored = scored[:size]
	}
	return scored
}
