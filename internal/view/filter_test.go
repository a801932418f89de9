package view

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"minagallery/internal/model"
)

func testItems() []model.NormalizedItem {
	return []model.NormalizedItem{
		{ID: "a", IsMotion: true, Liked: true, AspectRatio: "9:16"},
		{ID: "b", IsMotion: false, Liked: false, AspectRatio: "1:1"},
		{ID: "c", IsMotion: false, Liked: true, AspectRatio: ""},
		{ID: "d", IsMotion: true, Liked: false, AspectRatio: "9:16"},
	}
}

func TestCycleMotion(t *testing.T) {
	assert.Equal(t, model.MotionFilterMotion, CycleMotion(model.MotionFilterAll))
	assert.Equal(t, model.MotionFilterStill, CycleMotion(model.MotionFilterMotion))
	assert.Equal(t, model.MotionFilterAll, CycleMotion(model.MotionFilterStill))
}

func TestCycleAspectWrapsAround(t *testing.T) {
	idx := 0
	seen := []string{}
	for i := 0; i < len(testBuckets())+1; i++ {
		idx = CycleAspect(idx)
		seen = append(seen, AspectForIndex(idx))
	}
	assert.Equal(t, len(testBuckets())+1, len(seen))
	assert.Equal(t, "", seen[len(seen)-1])
	assert.Equal(t, 0, idx)
}

func testBuckets() []string {
	var buckets []string
	for i := 1; ; i++ {
		b := AspectForIndex(i)
		if b == "" {
			return buckets
		}
		buckets = append(buckets, b)
	}
}

func TestApplyMotionFilterDims(t *testing.T) {
	entries, visible := Apply(testItems(), model.ViewState{MotionFilter: model.MotionFilterMotion})

	assert.Equal(t, 2, visible)
	assert.Equal(t, false, entries[0].Dimmed)
	assert.Equal(t, true, entries[1].Dimmed)
	assert.Equal(t, true, entries[2].Dimmed)
	assert.Equal(t, false, entries[3].Dimmed)
}

func TestApplyLikedOnly(t *testing.T) {
	entries, visible := Apply(testItems(), model.ViewState{MotionFilter: model.MotionFilterAll, LikedOnly: true})

	assert.Equal(t, 2, visible)
	assert.Equal(t, false, entries[0].Dimmed)
	assert.Equal(t, false, entries[2].Dimmed)
}

func TestApplyUnknownAspectNeverMatches(t *testing.T) {
	state := model.ViewState{MotionFilter: model.MotionFilterAll}

	// Find the index selecting 9:16.
	for i := 1; AspectForIndex(i) != ""; i++ {
		if AspectForIndex(i) == "9:16" {
			state.AspectIndex = i
		}
	}

	entries, visible := Apply(testItems(), state)
	assert.Equal(t, 2, visible)
	// Item c has an unresolvable aspect and is dimmed under any bucket.
	assert.Equal(t, true, entries[2].Dimmed)
}

// For any sequence of filter toggles the underlying id sequence is
// invariant; only dimmed flags change.
func TestApplyNeverReordersOrDrops(t *testing.T) {
	items := testItems()

	states := []model.ViewState{
		{MotionFilter: model.MotionFilterAll},
		{MotionFilter: model.MotionFilterMotion},
		{MotionFilter: model.MotionFilterStill, LikedOnly: true},
		{MotionFilter: model.MotionFilterAll, AspectIndex: 1},
		{MotionFilter: model.MotionFilterStill, LikedOnly: true, AspectIndex: 3},
	}

	for _, state := range states {
		entries, _ := Apply(items, state)
		assert.Equal(t, len(items), len(entries))
		for i := range entries {
			assert.Equal(t, items[i].ID, entries[i].ID)
		}
	}
}
