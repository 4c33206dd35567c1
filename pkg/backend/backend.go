package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	pkghttp "insight-srv/pkg/http"

	"github.com/tidwall/gjson"
)

func (b *backendImpl) Analyze(ctx context.Context, token, postURL string) ([]byte, error) {
	resp, err := b.analyzeClient.Post(ctx, b.baseURL+PathAnalyze, map[string]string{"url": postURL}, authHeader(token))
	if err != nil {
		return nil, fmt.Errorf("backend.Analyze: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, newAPIError(resp, defaultErrorMessage)
	}
	return resp.Body, nil
}

// FetchSession asks /auth/session and falls back to /auth/me only when the
// first endpoint answers 401. Any other failure means no session.
func (b *backendImpl) FetchSession(ctx context.Context, token string) (*Session, error) {
	for _, path := range []string{PathAuthSession, PathAuthMe} {
		resp, err := b.httpClient.Get(ctx, b.baseURL+path, authHeader(token))
		if err != nil {
			return nil, nil
		}
		if !resp.IsSuccess() {
			if resp.StatusCode == 401 && path == PathAuthSession {
				continue
			}
			return nil, nil
		}

		var s Session
		if !decodeUser(resp.Body, &s) {
			return nil, nil
		}
		return &s, nil
	}
	return nil, nil
}

func (b *backendImpl) FetchProfile(ctx context.Context, token string) (*User, error) {
	resp, err := b.httpClient.Get(ctx, b.baseURL+PathUsersMe, authHeader(token))
	if err != nil || !resp.IsSuccess() {
		return nil, nil
	}

	var s Session
	if !decodeUser(resp.Body, &s) {
		return nil, nil
	}
	return &s.Usuario, nil
}

func (b *backendImpl) Export(ctx context.Context, token, format, analysisID string) (*File, error) {
	if format != FormatPDF && format != FormatExcel {
		return nil, ErrUnsupportedFormat
	}

	u := fmt.Sprintf("%s%s/%s/%s", b.baseURL, PathExport, format, url.PathEscape(analysisID))
	resp, err := b.httpClient.Get(ctx, u, authHeader(token))
	if err != nil {
		return nil, fmt.Errorf("backend.Export: %w", err)
	}
	if !resp.IsSuccess() {
		msg := strings.TrimSpace(string(resp.Body))
		if msg == "" {
			msg = defaultExportMessage
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return &File{Body: resp.Body, ContentType: resp.Header.Get("Content-Type")}, nil
}

func authHeader(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// decodeUser accepts a body only when usuario.id is a string. The other
// fields are read leniently and never reject the session.
func decodeUser(body []byte, s *Session) bool {
	if !gjson.ValidBytes(body) {
		return false
	}
	u := gjson.GetBytes(body, "usuario")
	id := u.Get("id")
	if id.Type != gjson.String {
		return false
	}

	s.Usuario = User{
		ID:           id.Str,
		Nome:         u.Get("nome").String(),
		Email:        u.Get("email").String(),
		Phone:        u.Get("phone").String(),
		EmailAtivado: u.Get("emailAtivado").Bool(),
		ExpiresAt:    u.Get("expiresAt").String(),
	}
	return true
}

// newAPIError reads the message from a JSON error body (message, then
// mensagem, then error) or takes the body text as is.
func newAPIError(resp pkghttp.Response, fallback string) *APIError {
	msg := fallback
	if strings.Contains(resp.Header.Get("Content-Type"), contentTypeJSON) {
		for _, key := range []string{"message", "mensagem", "error"} {
			if s, ok := truthyText(gjson.GetBytes(resp.Body, key)); ok {
				msg = s
				break
			}
		}
	} else if text := string(resp.Body); text != "" {
		msg = text
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

func truthyText(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, r.Str != ""
	case gjson.Number:
		return r.Raw, r.Num != 0
	case gjson.True:
		return "true", true
	case gjson.JSON:
		return r.Raw, true
	default:
		return "", false
	}
}
