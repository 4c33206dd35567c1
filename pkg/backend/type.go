package backend

import pkghttp "insight-srv/pkg/http"

// Config holds configuration for the backend client.
type Config struct {
	BaseURL       string
	HTTPClient    pkghttp.IClient
	// AnalyzeClient sends Analyze, which starts work upstream and is never retried.
	AnalyzeClient pkghttp.IClient
}

// User is the account record the backend returns under "usuario".
type User struct {
	ID           string `json:"id"`
	Nome         string `json:"nome,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	EmailAtivado bool   `json:"emailAtivado,omitempty"`
	ExpiresAt    string `json:"expiresAt,omitempty"`
}

// Session is the payload of the session endpoints.
type Session struct {
	Usuario User `json:"usuario"`
}

// File is an exported document.
type File struct {
	Body        []byte
	ContentType string
}

type backendImpl struct {
	baseURL       string
	httpClient    pkghttp.IClient
	analyzeClient pkghttp.IClient
}
