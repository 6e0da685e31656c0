package mail_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Kyz7/corporate-site/internal/config"
	"github.com/Kyz7/corporate-site/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingSender struct {
	release chan struct{}
	sent    chan mail.Message
}

func (b *blockingSender) Send(_ context.Context, msg mail.Message) error {
	<-b.release
	b.sent <- msg
	return nil
}

func TestDispatcherDeliversOnClose(t *testing.T) {
	rec := &mail.Recorder{}
	d := mail.NewDispatcher(rec, 8)

	assert.True(t, d.Enqueue(mail.Message{To: []string{"a@example.com"}, Subject: "one"}))
	assert.True(t, d.Enqueue(mail.Message{To: []string{"b@example.com"}, Subject: "two"}))
	d.Close()

	msgs := rec.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Subject)
	assert.Equal(t, "two", msgs[1].Subject)

	t.Run("Error - enqueue after close is dropped", func(t *testing.T) {
		assert.False(t, d.Enqueue(mail.Message{Subject: "late"}))
		d.Close()
	})
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	s := &blockingSender{release: make(chan struct{}), sent: make(chan mail.Message, 4)}
	d := mail.NewDispatcher(s, 1)

	assert.True(t, d.Enqueue(mail.Message{Subject: "in flight"}))
	// Once the worker has taken the first message the single slot is free.
	assert.Eventually(t, func() bool {
		return d.Enqueue(mail.Message{Subject: "queued"})
	}, time.Second, time.Millisecond)
	assert.False(t, d.Enqueue(mail.Message{Subject: "overflow"}))

	close(s.release)
	d.Close()
	assert.Len(t, s.sent, 2)
}

func TestDispatcherSurvivesSendFailure(t *testing.T) {
	rec := &mail.Recorder{Err: errors.New("relay unreachable")}
	d := mail.NewDispatcher(rec, 2)
	assert.True(t, d.Enqueue(mail.Message{Subject: "x"}))
	assert.True(t, d.Enqueue(mail.Message{Subject: "y"}))
	d.Close()
	assert.Len(t, rec.Messages(), 2)
}

func TestRenderNotificationEscapes(t *testing.T) {
	html, err := mail.RenderNotification("Yeni mesaj", []mail.Field{
		{Label: "Ad", Value: "<script>x</script>"},
		{Label: "Boş", Value: ""},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Yeni mesaj")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.False(t, strings.Contains(html, "Boş"))
}

func TestNewSelectsDriver(t *testing.T) {
	t.Run("Success - log driver", func(t *testing.T) {
		s, err := mail.New(config.MailConfig{Driver: "log"})
		require.NoError(t, err)
		assert.IsType(t, mail.LogSender{}, s)
	})

	t.Run("Success - resend driver", func(t *testing.T) {
		s, err := mail.New(config.MailConfig{Driver: "resend", ResendAPIKey: "re_test", From: "a@b.c"})
		require.NoError(t, err)
		assert.IsType(t, &mail.ResendSender{}, s)
	})

	t.Run("Error - smtp without host", func(t *testing.T) {
		_, err := mail.New(config.MailConfig{Driver: "smtp"})
		assert.Error(t, err)
	})

	t.Run("Error - unknown driver", func(t *testing.T) {
		_, err := mail.New(config.MailConfig{Driver: "pigeon"})
		assert.Error(t, err)
	})
}
