package alias

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestResolveTopLevelBeforeNested(t *testing.T) {
	rec := map[string]any{
		"url": "https://x/top.png",
		"payload": map[string]any{
			"url": "https://x/nested.png",
		},
	}

	assert.Equal(t, "https://x/top.png", Resolve(rec, []string{"url"}, ""))
}

func TestResolveAliasOrder(t *testing.T) {
	rec := map[string]any{
		"generation_id":    "g2",
		"mg_generation_id": "g3",
	}

	assert.Equal(t, "g2", Resolve(rec, []string{"id", "generation_id", "mg_generation_id"}, ""))
}

func TestResolveNested(t *testing.T) {
	rec := map[string]any{
		"meta": map[string]any{
			"aspect_ratio": "9:16",
		},
	}

	assert.Equal(t, "9:16", Resolve(rec, []string{"aspect_ratio"}, ""))
}

func TestResolveSkipsJunkValues(t *testing.T) {
	rec := map[string]any{
		"url":        "null",
		"output_url": "undefined",
		"image_url":  "  ",
		"result_url": "https://x/good.png",
	}

	got := Resolve(rec, []string{"url", "output_url", "image_url", "result_url"}, "")
	assert.Equal(t, "https://x/good.png", got)
}

func TestResolveFallback(t *testing.T) {
	assert.Equal(t, "none", Resolve(map[string]any{}, []string{"tone"}, "none"))
}

func TestResolveStringifiesNumbers(t *testing.T) {
	rec := map[string]any{"id": float64(42)}
	assert.Equal(t, "42", Resolve(rec, []string{"id"}, ""))
}

func TestResolveBool(t *testing.T) {
	rec := map[string]any{"liked": true}
	v, found := ResolveBool(rec, []string{"liked", "is_liked"})
	assert.Equal(t, true, v)
	assert.Equal(t, true, found)

	rec = map[string]any{"payload": map[string]any{"is_liked": "false"}}
	v, found = ResolveBool(rec, []string{"liked", "is_liked"})
	assert.Equal(t, false, v)
	assert.Equal(t, true, found)

	_, found = ResolveBool(map[string]any{}, []string{"liked"})
	assert.Equal(t, false, found)
}

func TestResolveStrings(t *testing.T) {
	rec := map[string]any{
		"style_presets": []any{"vivid", "retro", ""},
	}
	assert.Equal(t, []string{"vivid", "retro"}, ResolveStrings(rec, []string{"style_presets"}))

	rec = map[string]any{"style_presets": "vivid"}
	assert.Equal(t, []string{"vivid"}, ResolveStrings(rec, []string{"style_presets"}))

	assert.Equal(t, len(ResolveStrings(map[string]any{}, []string{"style_presets"})), 0)
}
