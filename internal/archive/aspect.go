package archive

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AspectBuckets is the fixed set of canonical aspect ratios the gallery
// groups by.
var AspectBuckets = []string{"9:16", "16:9", "3:4", "4:3", "2:3", "3:2", "1:1"}

var aspectNumberPattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)

// BucketAspect maps a free-form ratio string to the nearest bucket.
// Unparseable input yields "".
func BucketAspect(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	for _, b := range AspectBuckets {
		if s == b {
			return b
		}
	}

	nums := aspectNumberPattern.FindAllString(s, 2)
	var ratio float64
	switch len(nums) {
	case 1:
		v, err := strconv.ParseFloat(nums[0], 64)
		if err != nil || v <= 0 {
			return ""
		}
		ratio = v
	case 2:
		w, err1 := strconv.ParseFloat(nums[0], 64)
		h, err2 := strconv.ParseFloat(nums[1], 64)
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			return ""
		}
		ratio = w / h
	default:
		return ""
	}

	best := ""
	bestDiff := math.MaxFloat64
	for _, b := range AspectBuckets {
		if diff := math.Abs(ratio - bucketRatio(b)); diff < bestDiff {
			best = b
			bestDiff = diff
		}
	}
	return best
}

func bucketRatio(bucket string) float64 {
	parts := strings.SplitN(bucket, ":", 2)
	w, _ := strconv.ParseFloat(parts[0], 64)
	h, _ := strconv.ParseFloat(parts[1], 64)
	return w / h
}
