package handler

import (
	"net/url"
	"path"
	"strings"

	"minagallery/internal/model"
)

var knownExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".m4v": true,
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true,
}

// downloadFilename is "mina-<id>" plus an extension guessed from the
// URL, with a kind-appropriate fallback.
func downloadFilename(item model.NormalizedItem) string {
	ext := ""
	if u, err := url.Parse(item.URL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}

	if !knownExtensions[ext] {
		if item.IsMotion {
			ext = ".mp4"
		} else {
			ext = ".png"
		}
	}

	return "mina-" + item.ID + ext
}
