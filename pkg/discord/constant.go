package discord

import (
	"errors"
	"time"
)

const (
	defaultBaseURL    = "https://discord.com/api/webhooks"
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond
	defaultUsername   = "insight-srv"

	// Discord rejects embed descriptions above 4096 characters.
	maxDescriptionLength = 4000
	maxFieldValueLength  = 1000

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	errUnexpectedReply = errors.New("discord: unexpected webhook status")
)

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:         defaultBaseURL,
		Timeout:         defaultTimeout,
		RetryCount:      defaultRetryCount,
		RetryDelay:      defaultRetryDelay,
		DefaultUsername: defaultUsername,
	}
}
