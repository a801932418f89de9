package view

import (
	"minagallery/internal/archive"
	"minagallery/internal/model"
)

// Filtering only flips Dimmed; it never removes or reorders entries, so
// mounted video identity survives filter changes.
type Entry struct {
	model.NormalizedItem
	Dimmed bool
}

// CycleMotion advances all -> motion -> still -> all.
func CycleMotion(current string) string {
	switch current {
	case model.MotionFilterAll:
		return model.MotionFilterMotion
	case model.MotionFilterMotion:
		return model.MotionFilterStill
	default:
		return model.MotionFilterAll
	}
}

// CycleAspect wraps through the buckets; 0 means no aspect filter.
func CycleAspect(current int) int {
	next := current + 1
	if next > len(archive.AspectBuckets) {
		return 0
	}
	return next
}

func AspectForIndex(index int) string {
	if index <= 0 || index > len(archive.AspectBuckets) {
		return ""
	}
	return archive.AspectBuckets[index-1]
}

// Apply computes the dimmed flag per item and the non-dimmed count.
func Apply(items []model.NormalizedItem, state model.ViewState) ([]Entry, int) {
	aspect := AspectForIndex(state.AspectIndex)

	entries := make([]Entry, len(items))
	visible := 0
	for i, item := range items {
		dimmed := !matches(item, state.MotionFilter, state.LikedOnly, aspect)
		entries[i] = Entry{NormalizedItem: item, Dimmed: dimmed}
		if !dimmed {
			visible++
		}
	}
	return entries, visible
}

func matches(item model.NormalizedItem, motionFilter string, likedOnly bool, aspect string) bool {
	switch motionFilter {
	case model.MotionFilterMotion:
		if !item.IsMotion {
			return false
		}
	case model.MotionFilterStill:
		if item.IsMotion {
			return false
		}
	}

	if likedOnly && !item.Liked {
		return false
	}

	// An unknown aspect ("") never matches an aspect filter.
	if aspect != "" && item.AspectRatio != aspect {
		return false
	}

	return true
}
