package notifier

import (
	"context"

	"eva-assistant/pkg/log"
)

// Sender is the outbound message transport. pkg/whatsapp satisfies it.
type Sender interface {
	SendText(ctx context.Context, recipientID, text string) error
}

// Notifier delivers assistant replies back to the user. Delivery is
// best effort: a failed send is logged and dropped, it never bubbles
// back into the conversation flow.
type Notifier struct {
	sender Sender
	l      log.Logger
}

func New(sender Sender, l log.Logger) *Notifier {
	return &Notifier{sender: sender, l: l}
}

func (n *Notifier) Deliver(ctx context.Context, recipientID, text string) {
	if text == "" {
		n.l.Warnf(ctx, "notifier: skipping empty reply to %s", recipientID)
		return
	}
	if err := n.sender.SendText(ctx, recipientID, text); err != nil {
		n.l.Errorf(ctx, "notifier: failed to deliver reply to %s: %v", recipientID, err)
		return
	}
	n.l.Infof(ctx, "notifier: delivered reply to %s", recipientID)
}
