package notifier

import (
	"context"
	"github.com/slack-go/slack"
	"log/slog"
	"time"
)

// SlackNotifier posts notifications to a Slack incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Timeout    time.Duration
	Logger     *slog.Logger
}

var _ Notifier = &SlackNotifier{}

func (s *SlackNotifier) Notify(title, message string) {
	ctx := context.Background()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	err := slack.PostWebhookContext(ctx, s.WebhookURL, &slack.WebhookMessage{
		Attachments: []slack.Attachment{{
			Color: "good",
			Title: title,
			Text:  message,
		}},
	})
	if err != nil {
		s.Logger.Error("notifier failed to post message", "err", err)
	}
}
