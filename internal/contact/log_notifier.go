package contact

import (
	"context"
	"log/slog"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/config"
)

// LogNotifier writes submissions to the request log instead of sending email
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Name() string { return config.DeliveryLog }

func (n *LogNotifier) Notify(ctx context.Context, msg Notification) error {
	appctx.GetLogger(ctx).Info("contact submission",
		slog.String("submission_id", msg.ID),
		slog.String("subject", msg.Subject),
		slog.String("reply_to", msg.ReplyTo),
		slog.String("body", msg.Text),
	)
	return nil
}
