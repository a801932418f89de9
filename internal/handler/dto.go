package handler

import "minagallery/internal/model"

type GalleryItemResponse struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	URL         string `json:"url"`
	IsMotion    bool   `json:"is_motion"`
	Liked       bool   `json:"liked"`
	AspectRatio string `json:"aspect_ratio"`
	Prompt      string `json:"prompt"`
	Dimmed      bool   `json:"dimmed"`
	CanRecreate bool   `json:"can_recreate"`
}

type FiltersResponse struct {
	Motion    string `json:"motion"`
	LikedOnly bool   `json:"liked_only"`
	Aspect    string `json:"aspect"`
}

type AccountResponse struct {
	Email     string `json:"email"`
	Credits   int    `json:"credits"`
	ExpiresAt string `json:"expires_at"`
}

type GalleryResponse struct {
	SessionID    string                `json:"session_id"`
	Items        []GalleryItemResponse `json:"items"`
	VisibleTotal int                   `json:"visible_total"`
	Total        int                   `json:"total"`
	VisibleCount int                   `json:"visible_count"`
	Filters      FiltersResponse       `json:"filters"`
	Account      *AccountResponse      `json:"account,omitempty"`
}

type VisibilityReport struct {
	ID    string  `json:"id"`
	Ratio float64 `json:"ratio"`
}

type PlaybackRequest struct {
	Mounted    []string           `json:"mounted"`
	Unmounted  []string           `json:"unmounted"`
	Reports    []VisibilityReport `json:"reports"`
	PageHidden *bool              `json:"page_hidden"`
}

type PlaybackResponse struct {
	Playing string `json:"playing"`
}

type RecreateResponse struct {
	Draft    *model.RecreateDraft `json:"draft"`
	Redirect string               `json:"redirect"`
}

type DownloadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
