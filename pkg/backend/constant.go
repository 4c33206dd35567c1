package backend

import "time"

const (
	DefaultTimeout   = 60 * time.Second
	DefaultRetries   = 1
	DefaultRetryWait = 500 * time.Millisecond
)

const (
	PathAnalyze     = "/analyze"
	PathAuthSession = "/auth/session"
	PathAuthMe      = "/auth/me"
	PathUsersMe     = "/users/me"
	PathExport      = "/export"
)

const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

const (
	defaultErrorMessage  = "Erro ao comunicar com o servidor."
	defaultExportMessage = "Erro ao baixar o arquivo."
	contentTypeJSON      = "application/json"
)
