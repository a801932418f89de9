package archive

import "minagallery/internal/model"

// BuildDraft reconstructs a resubmittable draft from a normalized item.
// Unresolved fields are omitted entirely. Returns nil when the item has
// no user-authored brief.
func BuildDraft(item model.NormalizedItem) *model.RecreateDraft {
	if item.Prompt == "" {
		return nil
	}

	mode := model.ModeStill
	if item.IsMotion {
		mode = model.ModeMotion
	}

	draft := &model.RecreateDraft{
		Mode:  mode,
		Brief: item.Prompt,
	}

	settings := model.DraftSettings{
		AspectRatio:     item.AspectRatio,
		VisionEnabled:   item.Inputs.VisionEnabled,
		StylePresetKeys: item.Inputs.StylePresetKeys,
	}
	if settings.AspectRatio != "" || settings.VisionEnabled || len(settings.StylePresetKeys) > 0 {
		draft.Settings = &settings
	}

	assets := model.DraftAssets{
		ProductImageURL: item.Inputs.ProductImageURL,
		LogoImageURL:    item.Inputs.LogoImageURL,
		StyleImageURLs:  item.Inputs.StyleImageURLs,
	}
	if assets.ProductImageURL != "" || assets.LogoImageURL != "" || len(assets.StyleImageURLs) > 0 {
		draft.Assets = &assets
	}

	return draft
}
