package archive

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"minagallery/internal/model"
	"minagallery/pkg/alias"
)

// Every documented alias for a logical field, used as the sole populated
// field in a synthetic record, must resolve to the same value.
func TestAliasResolutionCompleteness(t *testing.T) {
	tables := map[string][]string{
		"id":       idAliases,
		"created":  createdAtAliases,
		"output":   outputURLAliases,
		"image":    imageURLAliases,
		"video":    videoURLAliases,
		"aspect":   aspectAliases,
		"type":     resultTypeAliases,
		"prompt":   promptAliases,
		"tone":     toneAliases,
		"platform": platformAliases,
		"product":  productImageAliases,
		"logo":     logoImageAliases,
		"comment":  commentAliases,
		"genref":   genRefAliases,
	}

	for field, aliases := range tables {
		for _, name := range aliases {
			top := model.RawRecord{name: "value"}
			assert.Equal(t, "value", alias.Resolve(top, aliases, ""))

			nested := model.RawRecord{"payload": map[string]any{name: "value"}}
			if alias.Resolve(nested, aliases, "") != "value" {
				t.Fatalf("field %s alias %s did not resolve from payload", field, name)
			}
		}
	}

	boolTables := map[string][]string{
		"liked":  likedFlagAliases,
		"vision": visionAliases,
	}

	for field, aliases := range boolTables {
		for _, name := range aliases {
			v, found := alias.ResolveBool(model.RawRecord{name: true}, aliases)
			if !found || !v {
				t.Fatalf("field %s alias %s did not resolve at top level", field, name)
			}

			v, found = alias.ResolveBool(model.RawRecord{"payload": map[string]any{name: true}}, aliases)
			if !found || !v {
				t.Fatalf("field %s alias %s did not resolve from payload", field, name)
			}
		}
	}

	listTables := map[string][]string{
		"styles":      styleKeyAliases,
		"styleimages": styleImageAliases,
	}

	for field, aliases := range listTables {
		for _, name := range aliases {
			top := model.RawRecord{name: []any{"value"}}
			assert.Equal(t, []string{"value"}, alias.ResolveStrings(top, aliases))

			nested := model.RawRecord{"payload": map[string]any{name: []any{"value"}}}
			if got := alias.ResolveStrings(nested, aliases); len(got) != 1 || got[0] != "value" {
				t.Fatalf("field %s alias %s did not resolve from payload", field, name)
			}
		}
	}
}

func TestNormalizeGenerationResolvesDriftedRow(t *testing.T) {
	rec := model.RawRecord{
		"mg_generation_id": "g7",
		"mg_output_url":    "https://x/out.png?sig=1",
		"payload": map[string]any{
			"mg_user_prompt":  "sunset over harbor",
			"mg_aspect_ratio": "9:16",
			"mg_tone":         "playful",
			"use_vision":      true,
		},
	}

	c, ok := normalizeGeneration(rec)
	assert.Equal(t, true, ok)
	assert.Equal(t, "g7", c.item.ID)
	assert.Equal(t, "https://x/out.png?sig=1", c.item.URL)
	assert.Equal(t, "https://x/out.png", c.key)
	assert.Equal(t, false, c.item.IsMotion)
	assert.Equal(t, "9:16", c.item.AspectRatio)
	assert.Equal(t, "sunset over harbor", c.item.Prompt)
	assert.Equal(t, "playful", c.item.Inputs.Tone)
	assert.Equal(t, true, c.item.Inputs.VisionEnabled)
	assert.Equal(t, rankGeneration, c.rank)
}

func TestNormalizeGenerationNoURL(t *testing.T) {
	_, ok := normalizeGeneration(model.RawRecord{"id": "g1", "user_prompt": "cat"})
	assert.Equal(t, false, ok)
}

func TestIsLikeRecordEmptyComment(t *testing.T) {
	assert.Equal(t, true, isLikeRecord(model.RawRecord{"comment": ""}))
	assert.Equal(t, false, isLikeRecord(model.RawRecord{"comment": "love this one"}))
	assert.Equal(t, false, isLikeRecord(model.RawRecord{}))
}

func TestIsLikeRecordExplicitFlagWins(t *testing.T) {
	// An explicit false flag overrides the empty-comment heuristic.
	assert.Equal(t, false, isLikeRecord(model.RawRecord{"comment": "", "liked": false}))
	assert.Equal(t, true, isLikeRecord(model.RawRecord{"comment": "great", "liked": true}))
	assert.Equal(t, true, isLikeRecord(model.RawRecord{"payload": map[string]any{"is_liked": true}}))
}

func TestNormalizeFeedbackWithMediaURL(t *testing.T) {
	rec := model.RawRecord{
		"mg_generation_id": "g9",
		"comment":          "",
		"payload": map[string]any{
			"video_url": "https://x/clip.mp4",
		},
	}

	c, ok := normalizeFeedback(rec)
	assert.Equal(t, true, ok)
	assert.Equal(t, "g9", c.item.ID)
	assert.Equal(t, "https://x/clip.mp4", c.item.URL)
	assert.Equal(t, true, c.item.IsMotion)
	assert.Equal(t, true, c.item.Liked)
	assert.Equal(t, rankFeedback, c.rank)
}

func TestNormalizeFeedbackTextCommentIgnored(t *testing.T) {
	_, ok := normalizeFeedback(model.RawRecord{
		"comment":   "nice",
		"image_url": "https://x/a.png",
	})
	assert.Equal(t, false, ok)
}
