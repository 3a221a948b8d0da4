package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/config"
	"github.com/knorx/knorx-site/internal/contact"
)

func main() {
	// Parse command-line flags
	autoConfirm := flag.Bool("y", false, "Send without prompting")
	name := flag.String("name", "KNORX Test Lead", "Submitter name")
	email := flag.String("email", "test-lead@example.com", "Submitter email (used as Reply-To)")
	message := flag.String("message", "This is a test lead sent from send-test-lead.\nPlease ignore.", "Message body")
	flag.Parse()

	// Load configuration (.env is picked up by config.Load)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.Level(),
	}))
	slog.SetDefault(logger)

	ctx := appctx.WithLogger(context.Background(), logger)

	notifier, err := contact.NewNotifier(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize notifier: %v", err)
	}

	renderer, err := contact.NewRenderer(cfg.Contact)
	if err != nil {
		log.Fatalf("Failed to load email templates: %v", err)
	}

	svc := contact.NewService(notifier, renderer)

	sub := contact.Submission{Name: *name, Email: *email, Message: *message}

	fmt.Printf("\nDelivery: %s\n", notifier.Name())
	if notifier.Name() != config.DeliveryLog {
		fmt.Printf("From:     %s\n", cfg.Contact.From)
		fmt.Printf("To:       %s\n", cfg.Contact.To)
	}
	fmt.Printf("Name:     %s\nEmail:    %s\n", sub.Name, sub.Email)

	// Ask for confirmation (unless auto-confirm is enabled)
	if !*autoConfirm {
		fmt.Print("\nType 'yes' to send this test lead: ")

		var confirm string
		fmt.Scanln(&confirm)
		if strings.ToLower(confirm) != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	receipt, err := svc.Submit(ctx, sub)
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTest lead sent! Submission ID: %s\n", receipt.ID)
}
