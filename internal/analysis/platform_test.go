package analysis

import (
	"encoding/json"
	"testing"

	"insight-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tcs := map[string]struct {
		in   string
		want string
		err  error
	}{
		"trimmed":      {in: "  https://www.instagram.com/p/abc/  ", want: "https://www.instagram.com/p/abc/"},
		"http":         {in: "http://youtu.be/x", want: "http://youtu.be/x"},
		"upper scheme": {in: "HTTPS://tiktok.com/@a/video/1", want: "HTTPS://tiktok.com/@a/video/1"},
		"empty":        {in: "   ", err: ErrURLRequired},
		"no scheme":    {in: "instagram.com/p/abc", err: ErrInvalidURL},
		"ftp":          {in: "ftp://instagram.com/p/abc", err: ErrInvalidURL},
		"no host":      {in: "https://", err: ErrInvalidURL},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := ValidateURL(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tcs := map[string]string{
		"https://www.instagram.com/p/abc/":       PlatformInstagram,
		"https://instagram.com/reel/abc":         PlatformInstagram,
		"https://m.facebook.com/story.php?id=1":  PlatformFacebook,
		"https://fb.watch/abc/":                  PlatformFacebook,
		"https://www.tiktok.com/@user/video/123": PlatformTikTok,
		"https://www.youtube.com/watch?v=abc":    PlatformYouTube,
		"https://youtu.be/abc":                   PlatformYouTube,
		"https://notinstagram.com/p/abc":         PlatformOther,
		"https://twitter.com/user/status/1":      PlatformOther,
		"::not a url":                            PlatformOther,
	}

	for in, want := range tcs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, DetectPlatform(in))
		})
	}
}

func TestBackendID(t *testing.T) {
	tcs := map[string]struct {
		in   model.Analysis
		want string
	}{
		"text id":        {in: model.Analysis{ID: "a1", Raw: json.RawMessage(`{"id":"b-9"}`)}, want: "b-9"},
		"numeric id":     {in: model.Analysis{ID: "a1", Raw: json.RawMessage(`{"id":42}`)}, want: "42"},
		"null id":        {in: model.Analysis{ID: "a1", ExternalID: "ext", Raw: json.RawMessage(`{"id":null}`)}, want: "ext"},
		"no raw":         {in: model.Analysis{ID: "a1"}, want: "a1"},
		"non object raw": {in: model.Analysis{ID: "a1", Raw: json.RawMessage(`[1,2]`)}, want: "a1"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, BackendID(tc.in))
		})
	}
}
