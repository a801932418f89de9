package model

const (
	MotionFilterAll    = "all"
	MotionFilterMotion = "motion"
	MotionFilterStill  = "still"
)

// ViewState is the per-session presentation state.
type ViewState struct {
	MotionFilter string `json:"motion_filter"`
	LikedOnly    bool   `json:"liked_only"`
	AspectIndex  int    `json:"aspect_index"` // 0 = no aspect filter, i>0 = AspectBuckets[i-1]
	VisibleCount int    `json:"visible_count"`
	LastTotal    int    `json:"last_total"`
}
