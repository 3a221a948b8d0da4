package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/config"
)

// entityRefHeader stops mail clients from threading unrelated leads together
const entityRefHeader = "X-Entity-Ref-ID"

// resendEmails is the part of the Resend SDK we use
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier sends notifications through the Resend API
type ResendNotifier struct {
	emails  resendEmails
	timeout time.Duration
}

// NewResendNotifier creates a notifier backed by the Resend SDK
func NewResendNotifier(cfg config.ResendConfig, timeout time.Duration) *ResendNotifier {
	client := resend.NewClient(cfg.APIKey)
	return &ResendNotifier{
		emails:  client.Emails,
		timeout: timeout,
	}
}

func (n *ResendNotifier) Name() string { return config.DeliveryResend }

func (n *ResendNotifier) Notify(ctx context.Context, msg Notification) error {
	l := appctx.GetLogger(ctx)

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Headers: map[string]string{entityRefHeader: msg.ID},
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	sent, err := n.emails.SendWithContext(sendCtx, params)
	if err != nil {
		return err
	}

	l.Info("contact notification sent",
		slog.String("message_id", sent.Id),
	)
	return nil
}
