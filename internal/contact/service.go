package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/apperrs"
)

// Service relays contact submissions to a Notifier
type Service struct {
	notifier Notifier
	renderer *Renderer
	newID    func() string
}

// NewService creates a contact service
func NewService(notifier Notifier, renderer *Renderer) *Service {
	return &Service{
		notifier: notifier,
		renderer: renderer,
		newID:    uuid.NewString,
	}
}

// Submit renders sub and hands it to the notifier once. There are no retries.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Receipt, error) {
	id := s.newID()
	l := appctx.GetLogger(ctx).With(
		slog.String("submission_id", id),
		slog.String("notifier", s.notifier.Name()),
	)

	msg, err := s.renderer.Render(id, sub)
	if err != nil {
		l.Error("failed to render contact notification", slog.Any("error", err))
		return nil, apperrs.Server("failed to render contact notification", err)
	}

	if err := s.notifier.Notify(appctx.WithLogger(ctx, l), msg); err != nil {
		l.Error("failed to deliver contact notification", slog.Any("error", err))
		return nil, apperrs.Delivery("failed to deliver contact notification", err).
			SetMeta("submission_id", id)
	}

	return &Receipt{ID: id, Notifier: s.notifier.Name()}, nil
}
