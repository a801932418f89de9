package archive

import (
	"net/url"
	"path"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
	".avi":  true,
	".mkv":  true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".svg":  true,
}

// CanonicalURL strips the query and fragment so rotating signed params
// do not split one asset into many.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

func urlExtension(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(path.Ext(CanonicalURL(raw)))
	}
	return strings.ToLower(path.Ext(u.Path))
}

func hasVideoExtension(raw string) bool {
	return videoExtensions[urlExtension(raw)]
}

func hasImageExtension(raw string) bool {
	return imageExtensions[urlExtension(raw)]
}

func typeIndicatesVideo(resultType string) bool {
	return strings.Contains(strings.ToLower(resultType), "video")
}

// An image extension on either URL wins over ambiguous type metadata.
func isMotion(videoURL, imageURL, outputURL, resultType string) bool {
	if videoURL != "" {
		return true
	}
	if hasVideoExtension(outputURL) {
		return true
	}
	if typeIndicatesVideo(resultType) && !hasImageExtension(outputURL) && !hasImageExtension(imageURL) {
		return true
	}
	return false
}

func selectURL(motion bool, videoURL, imageURL, outputURL string) string {
	if motion {
		if videoURL != "" {
			return videoURL
		}
		return outputURL
	}
	if imageURL != "" {
		return imageURL
	}
	return outputURL
}
