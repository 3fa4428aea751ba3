package recommend

import (
	"testing"
)

func intPtr(n int) *int { return &n }

func TestTagOverlap(t *testing.T) {
	tests := []struct {
		name      string
		current   Item
		candidate Item
		want      int
	}{
		{
			name:      "single shared tag",
			current:   Item{ID: "x", Tags: []string{"SizzleReel"}},
			candidate: Item{ID: "a", Tags: []string{"SizzleReel"}},
			want:      1,
		},
		{
			name:      "case insensitive match",
			current:   Item{ID: "x", Tags: []string{"sizzlereel"}},
			candidate: Item{ID: "a", Tags: []string{"SIZZLEREEL"}},
			want:      1,
		},
		{
			name:      "multiple shared tags",
			current:   Item{ID: "x", Tags: []string{"Store", "Latest"}},
			candidate: Item{ID: "a", Tags: []string{"latest", "store", "Other"}},
			want:      2,
		},
		{
			name:      "no shared tags",
			current:   Item{ID: "x", Tags: []string{"Store"}},
			candidate: Item{ID: "a", Tags: []string{"Latest"}},
			want:      0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := TagOverlap(test.current, test.candidate); got != test.want {
				t.Errorf("TagOverlap() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestViewBonus(t *testing.T) {
	tests := []struct {
		name    string
		views   *int
		divisor int
		want    int
	}{
		{"nil views", nil, 1000, 0},
		{"below divisor", intPtr(500), 1000, 0},
		{"exactly divisor", intPtr(1000), 1000, 1},
		{"floors the quotient", intPtr(9999), 1000, 9},
		{"negative views ignored", intPtr(-5), 1000, 0},
		{"zero divisor guarded", intPtr(5000), 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ViewBonus(test.views, test.divisor); got != test.want {
				t.Errorf("ViewBonus() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestRank_TagMatchBeatsUnrelatedPopularity(t *testing.T) {
	current := &Item{ID: "current", Tags: []string{"SizzleReel"}}
	pool := []Item{
		{ID: "a", Tags: []string{"SizzleReel"}, ViewCount: intPtr(500)},
		{ID: "b", Tags: []string{"Other"}, ViewCount: intPtr(9000)},
		{ID: "c", Tags: []string{"SizzleReel"}, ViewCount: intPtr(0)},
	}

	got := Rank(current, pool, 2, 1000)

	if len(got) != 2 {
		t.Fatalf("expected shortlist of 2, got %d", len(got))
	}
	// a and c both score 1 (tag match, no view bonus); tie broken by pool
	// order. b shares no tag and stays out regardless of its views.
	if got[0].Item.ID != "a" || got[1].Item.ID != "c" {
		t.Errorf("expected [a c], got [%s %s]", got[0].Item.ID, got[1].Item.ID)
	}
}

func TestRank_ViewBonusBoostsMatchedCandidates(t *testing.T) {
	current := &Item{ID: "current", Tags: []string{"Store"}}
	pool := []Item{
		{ID: "quiet", Tags: []string{"Store", "Latest"}},
		{ID: "popular", Tags: []string{"Store"}, ViewCount: intPtr(5000)},
	}

	got := Rank(current, pool, 2, 1000)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	// popular: 1 overlap + 5 bonus = 6; quiet: 1 overlap + 0 = 1.
	if got[0].Item.ID != "popular" || got[0].Score != 6 {
		t.Errorf("expected popular first with score 6, got %s score %d", got[0].Item.ID, got[0].Score)
	}
	if got[1].Item.ID != "quiet" || got[1].Score != 1 {
		t.Errorf("expected quiet second with score 1, got %s score %d", got[1].Item.ID, got[1].Score)
	}
}

func TestRank_ExcludesCurrentAndTaglessCandidates(t *testing.T) {
	current := &Item{ID: "current", Tags: []string{"Store"}}
	pool := []Item{
		{ID: "current", Tags: []string{"Store"}, ViewCount: intPtr(99999)},
		{ID: "tagless", Tags: []string{}, ViewCount: intPtr(99999)},
		{ID: "match", Tags: []string{"Store"}},
	}

	got := Rank(current, pool, 5, 1000)

	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Item.ID != "match" {
		t.Errorf("expected match, got %s", got[0].Item.ID)
	}
}

func TestRank_EmptyInputs(t *testing.T) {
	pool := []Item{{ID: "a", Tags: []string{"Store"}}}

	if got := Rank(nil, pool, 2, 1000); len(got) != 0 {
		t.Errorf("expected empty shortlist for nil current, got %v", got)
	}
	current := &Item{ID: "x", Tags: []string{"Store"}}
	if got := Rank(current, []Item{}, 2, 1000); len(got) != 0 {
		t.Errorf("expected empty shortlist for empty pool, got %v", got)
	}
	if got := Rank(current, pool, 0, 1000); len(got) != 0 {
		t.Errorf("expected empty shortlist for zero size, got %v", got)
	}
}

func TestRank_TruncatesToShortlistSize(t *testing.T) {
	current := &Item{ID: "current", Tags: []string{"Store"}}
	pool := []Item{
		{ID: "a", Tags: []string{"Store"}},
		{ID: "b", Tags: []string{"Store"}},
		{ID: "c", Tags: []string{"Store"}},
		{ID: "d", Tags: []string{"Store"}},
	}

	got := Rank(current, pool, 2, 1000)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Item.ID != "a" || got[1].Item.ID != "b" {
		t.Errorf("expected stable order [a b], got [%s %s]", got[0].Item.ID, got[1].Item.ID)
	}
}
