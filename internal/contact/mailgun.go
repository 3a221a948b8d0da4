package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/config"
)

// mailgunClient is the part of *mailgun.MailgunImpl we use
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunNotifier sends notifications via the Mailgun messages API
type MailgunNotifier struct {
	client  mailgunClient
	timeout time.Duration
}

// NewMailgunNotifier creates a notifier for the configured Mailgun domain
func NewMailgunNotifier(cfg config.MailgunConfig, timeout time.Duration) *MailgunNotifier {
	client := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}

	return &MailgunNotifier{
		client:  client,
		timeout: timeout,
	}
}

func (n *MailgunNotifier) Name() string { return config.DeliveryMailgun }

func (n *MailgunNotifier) Notify(ctx context.Context, msg Notification) error {
	l := appctx.GetLogger(ctx)

	message := n.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}
	message.AddHeader(entityRefHeader, msg.ID)

	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, messageID, err := n.client.Send(sendCtx, message)
	if err != nil {
		return err
	}

	l.Info("contact notification sent",
		slog.String("message_id", messageID),
	)
	return nil
}
