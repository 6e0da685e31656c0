package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendSenderReplyTo(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test", "site@example.com")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	s.client.BaseURL = base

	err = s.Send(context.Background(), Message{
		To:      []string{"admin@example.com"},
		Subject: "Yeni iletişim mesajı",
		HTML:    "<p>Merhaba</p>",
		ReplyTo: "ayse@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "ayse@example.com", got["reply_to"])
	assert.Nil(t, got["headers"])
}
