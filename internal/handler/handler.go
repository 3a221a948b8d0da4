package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/knorx/knorx-site/internal/config"
	"github.com/knorx/knorx-site/internal/contact"
)

// ContactSubmitter accepts contact form submissions
type ContactSubmitter interface {
	Submit(ctx context.Context, sub contact.Submission) (*contact.Receipt, error)
}

// Handler holds all dependencies for HTTP handlers
type Handler struct {
	config  *config.Config
	contact ContactSubmitter
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a new Handler instance
func New(cfg *config.Config, submitter ContactSubmitter, logger *slog.Logger) *Handler {
	return &Handler{
		config:  cfg,
		contact: submitter,
		logger:  logger,
		now:     time.Now,
	}
}
