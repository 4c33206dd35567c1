package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insight-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), nil, Config{})
	assert.ErrorIs(t, err, errWebhookRequired)

	_, err = NewDiscordWebhook("", "token")
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestSendError(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hooks/123/abc", r.URL.Path)
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, r.Body)
		body = buf.String()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	wh, err := NewDiscordWebhook("123", "abc")
	require.NoError(t, err)
	d, err := New(log.NewNop(), wh, Config{BaseURL: srv.URL + "/hooks"})
	require.NoError(t, err)

	require.NoError(t, d.SendError(context.Background(), "Export failed", "report r1", errors.New("boom")))

	assert.Equal(t, "insight-srv", gjson.Get(body, "username").String())
	assert.Equal(t, "Export failed", gjson.Get(body, "embeds.0.title").String())
	assert.Equal(t, int64(colorError), gjson.Get(body, "embeds.0.color").Int())
	assert.Equal(t, "boom", gjson.Get(body, "embeds.0.fields.0.value").String())
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	wh, _ := NewDiscordWebhook("1", "t")
	d, err := New(log.NewNop(), wh, Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = d.SendMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, errUnexpectedReply)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "çã...", truncate("çãõéíóú", 5))
}
