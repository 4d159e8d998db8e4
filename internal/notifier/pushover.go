package notifier

import (
	"github.com/gregdel/pushover"
	"log/slog"
)

// PushoverSender sends a message to a Pushover recipient. Implemented by *pushover.Pushover.
type PushoverSender interface {
	SendMessage(*pushover.Message, *pushover.Recipient) (*pushover.Response, error)
}

// PushoverNotifier sends notifications to a user's devices through Pushover.
type PushoverNotifier struct {
	Sender    PushoverSender
	Recipient *pushover.Recipient
	Logger    *slog.Logger
}

var _ Notifier = &PushoverNotifier{}

// NewPushoverNotifier returns a PushoverNotifier for the application token & user key.
func NewPushoverNotifier(token, userKey string, logger *slog.Logger) *PushoverNotifier {
	return &PushoverNotifier{
		Sender:    pushover.New(token),
		Recipient: pushover.NewRecipient(userKey),
		Logger:    logger,
	}
}

func (p *PushoverNotifier) Notify(title, message string) {
	resp, err := p.Sender.SendMessage(pushover.NewMessageWithTitle(message, title), p.Recipient)
	if err != nil {
		p.Logger.Error("failed to send notification", "err", err)
		return
	}
	p.Logger.Debug("notification sent", "id", resp.ID)
}
