package analysis

import (
	"net/url"
	"strings"

	"insight-srv/internal/model"

	"github.com/tidwall/gjson"
)

var platformHosts = []struct {
	suffix   string
	platform string
}{
	{"instagram.com", PlatformInstagram},
	{"facebook.com", PlatformFacebook},
	{"fb.watch", PlatformFacebook},
	{"tiktok.com", PlatformTikTok},
	{"youtube.com", PlatformYouTube},
	{"youtu.be", PlatformYouTube},
}

// ValidateURL trims raw and checks that it is an absolute http(s) link.
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrURLRequired
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return "", ErrInvalidURL
	}
	return s, nil
}

// DetectPlatform names the social network a post link points to.
func DetectPlatform(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return PlatformOther
	}

	host := strings.ToLower(u.Hostname())
	for _, h := range platformHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.platform
		}
	}
	return PlatformOther
}

// IsValidPlatform reports whether p is a known platform name.
func IsValidPlatform(p string) bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformYouTube, PlatformOther:
		return true
	}
	return false
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// BackendID is the id the analysis backend gave a record, which its export
// endpoints expect. Records without one fall back to their own id.
func BackendID(a model.Analysis) string {
	if len(a.Raw) > 0 {
		if id := gjson.GetBytes(a.Raw, "id"); id.Exists() && id.Type != gjson.Null && id.String() != "" {
			return id.String()
		}
	}
	if a.ExternalID != "" {
		return a.ExternalID
	}
	return a.ID
}
