package contact

import (
	"context"
	"fmt"

	"github.com/knorx/knorx-site/internal/config"
)

// Notifier delivers a rendered notification somewhere a human will read it
type Notifier interface {
	Name() string
	Notify(ctx context.Context, n Notification) error
}

// NewNotifier returns the notifier selected by CONTACT_DELIVERY
func NewNotifier(cfg *config.Config) (Notifier, error) {
	switch cfg.Contact.Delivery {
	case config.DeliveryLog, "":
		return NewLogNotifier(), nil
	case config.DeliveryResend:
		return NewResendNotifier(cfg.Resend, cfg.Contact.SendTimeout), nil
	case config.DeliveryMailgun:
		return NewMailgunNotifier(cfg.Mailgun, cfg.Contact.SendTimeout), nil
	default:
		return nil, fmt.Errorf("unknown delivery mode %q", cfg.Contact.Delivery)
	}
}
