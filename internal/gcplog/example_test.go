package gcplog_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/knorx/knorx-site/internal/gcplog"
)

func ExampleNewHandler() {
	logger := slog.New(gcplog.NewHandler(os.Stderr, &gcplog.Options{
		Level:   slog.LevelInfo,
		Service: "knorx-site",
	}))

	logger.Info("contact submission received",
		"submission_id", "0b8e3c6e-2f7c-4a53-9d0e-3d1f0d9b6a11",
		"notifier", "resend",
	)

	logger.Error("contact notification failed",
		"error", errors.New("resend: 422 validation_error"),
		"submission_id", "0b8e3c6e-2f7c-4a53-9d0e-3d1f0d9b6a11",
	)
}

func ExampleNewHandler_grouping() {
	logger := slog.New(gcplog.NewHandler(os.Stderr, nil))

	logger.WithGroup("lead").Info("Lead captured",
		"name", "Ada Lovelace",
		"email", "ada@example.com",
	)
}
