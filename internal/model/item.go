package model

type ItemInputs struct {
	Tone            string
	Platform        string
	VisionEnabled   bool
	StylePresetKeys []string
	ProductImageURL string
	LogoImageURL    string
	StyleImageURLs  []string
}

// NormalizedItem is the unit the gallery operates on.
type NormalizedItem struct {
	ID          string
	CreatedAt   string
	URL         string
	IsMotion    bool
	Liked       bool
	AspectRatio string
	Prompt      string
	Inputs      ItemInputs
	CanRecreate bool
	Draft       *RecreateDraft
}

// Draft settings and assets only carry fields that resolved.
type DraftSettings struct {
	AspectRatio     string   `json:"aspect_ratio,omitempty"`
	VisionEnabled   bool     `json:"vision_enabled,omitempty"`
	StylePresetKeys []string `json:"style_preset_keys,omitempty"`
}

type DraftAssets struct {
	ProductImageURL string   `json:"product_image_url,omitempty"`
	LogoImageURL    string   `json:"logo_image_url,omitempty"`
	StyleImageURLs  []string `json:"style_image_urls,omitempty"`
}

type RecreateDraft struct {
	Mode     string         `json:"mode"`
	Brief    string         `json:"brief"`
	Settings *DraftSettings `json:"settings,omitempty"`
	Assets   *DraftAssets   `json:"assets,omitempty"`
}

const (
	ModeStill  = "still"
	ModeMotion = "motion"
)
