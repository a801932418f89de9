package archive

import (
	"strings"

	"minagallery/internal/model"
	"minagallery/pkg/alias"
)

// Ordered alias tables for every field the backend schemas have renamed
// over time, newest spelling first.
var (
	idAliases        = []string{"id", "generation_id", "mg_generation_id"}
	createdAtAliases = []string{"created_at", "mg_created_at", "createdAt"}

	outputURLAliases = []string{"output_url", "mg_output_url", "result_url", "url"}
	imageURLAliases  = []string{"image_url", "mg_image_url"}
	videoURLAliases  = []string{"video_url", "mg_video_url"}

	aspectAliases     = []string{"aspect_ratio", "mg_aspect_ratio", "ratio"}
	resultTypeAliases = []string{"result_type", "mg_result_type", "content_type", "mime_type"}

	// User-authored brief only, never a generated prompt field.
	promptAliases = []string{
		"user_prompt", "mg_user_prompt", "user_brief",
		"mg_brief", "brief", "original_user_prompt",
	}

	toneAliases     = []string{"tone", "mg_tone"}
	platformAliases = []string{"platform", "mg_platform", "target_platform"}
	visionAliases   = []string{"vision_enabled", "use_vision", "mg_vision_enabled"}
	styleKeyAliases = []string{"style_preset_keys", "style_presets", "mg_style_keys", "styles"}

	productImageAliases = []string{"product_image_url", "mg_product_image", "product_image"}
	logoImageAliases    = []string{"logo_image_url", "mg_logo_image", "logo_url"}
	styleImageAliases   = []string{"style_image_urls", "inspiration_images", "mg_style_images"}

	commentAliases   = []string{"comment", "mg_comment", "feedback_text"}
	likedFlagAliases = []string{"liked", "is_liked", "like"}
	genRefAliases    = []string{"generation_id", "mg_generation_id", "gen_id"}
)

const (
	rankFeedback   = 1
	rankGeneration = 2
)

type candidate struct {
	item model.NormalizedItem
	key  string // canonical URL, the identity key
	rank int
}

// normalizeGeneration returns false when no usable URL resolves.
func normalizeGeneration(rec model.RawRecord) (candidate, bool) {
	videoURL := alias.Resolve(rec, videoURLAliases, "")
	imageURL := alias.Resolve(rec, imageURLAliases, "")
	outputURL := alias.Resolve(rec, outputURLAliases, "")
	resultType := alias.Resolve(rec, resultTypeAliases, "")

	motion := isMotion(videoURL, imageURL, outputURL, resultType)
	itemURL := selectURL(motion, videoURL, imageURL, outputURL)
	if itemURL == "" {
		return candidate{}, false
	}

	item := model.NormalizedItem{
		ID:          alias.Resolve(rec, idAliases, ""),
		CreatedAt:   alias.Resolve(rec, createdAtAliases, ""),
		URL:         itemURL,
		IsMotion:    motion,
		AspectRatio: BucketAspect(alias.Resolve(rec, aspectAliases, "")),
		Prompt:      alias.Resolve(rec, promptAliases, ""),
		Inputs:      normalizeInputs(rec),
	}

	return candidate{item: item, key: CanonicalURL(itemURL), rank: rankGeneration}, true
}

func normalizeInputs(rec model.RawRecord) model.ItemInputs {
	vision, _ := alias.ResolveBool(rec, visionAliases)
	return model.ItemInputs{
		Tone:            alias.Resolve(rec, toneAliases, ""),
		Platform:        alias.Resolve(rec, platformAliases, ""),
		VisionEnabled:   vision,
		StylePresetKeys: alias.ResolveStrings(rec, styleKeyAliases),
		ProductImageURL: alias.Resolve(rec, productImageAliases, ""),
		LogoImageURL:    alias.Resolve(rec, logoImageAliases, ""),
		StyleImageURLs:  alias.ResolveStrings(rec, styleImageAliases),
	}
}

// isLikeRecord prefers an explicit liked flag; without one, a comment
// field that is present but empty counts as a like.
func isLikeRecord(rec model.RawRecord) bool {
	if flag, found := alias.ResolveBool(rec, likedFlagAliases); found {
		return flag
	}
	v, present := alias.Lookup(rec, commentAliases)
	if !present {
		return false
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func likeURL(rec model.RawRecord) string {
	if u := alias.Resolve(rec, videoURLAliases, ""); u != "" {
		return u
	}
	if u := alias.Resolve(rec, imageURLAliases, ""); u != "" {
		return u
	}
	return alias.Resolve(rec, outputURLAliases, "")
}

// normalizeFeedback admits a like that carries its own media URL, so a
// liked asset missing from the generation stream still surfaces.
func normalizeFeedback(rec model.RawRecord) (candidate, bool) {
	if !isLikeRecord(rec) {
		return candidate{}, false
	}

	u := likeURL(rec)
	if u == "" {
		return candidate{}, false
	}

	videoURL := alias.Resolve(rec, videoURLAliases, "")
	imageURL := alias.Resolve(rec, imageURLAliases, "")
	resultType := alias.Resolve(rec, resultTypeAliases, "")

	item := model.NormalizedItem{
		ID:          alias.Resolve(rec, genRefAliases, ""),
		CreatedAt:   alias.Resolve(rec, createdAtAliases, ""),
		URL:         u,
		IsMotion:    isMotion(videoURL, imageURL, u, resultType),
		Liked:       true,
		AspectRatio: BucketAspect(alias.Resolve(rec, aspectAliases, "")),
	}

	return candidate{item: item, key: CanonicalURL(u), rank: rankFeedback}, true
}
