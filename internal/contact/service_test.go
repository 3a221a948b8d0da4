package contact

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knorx/knorx-site/internal/apperrs"
	"github.com/knorx/knorx-site/internal/config"
)

// recordingNotifier counts deliveries and can be told to fail
type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) Notify(_ context.Context, msg Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func newTestService(t *testing.T, n Notifier) *Service {
	t.Helper()
	svc := NewService(n, newTestRenderer(t))
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func TestService_Submit(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestService(t, n)

	receipt, err := svc.Submit(context.Background(), Submission{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Message: "Modernize our COBOL",
	})
	require.NoError(t, err)

	assert.Equal(t, &Receipt{ID: "fixed-id", Notifier: "recording"}, receipt)
	require.Len(t, n.sent, 1)
	assert.Equal(t, "fixed-id", n.sent[0].ID)
	assert.Equal(t, "New Lead: Grace Hopper", n.sent[0].Subject)
}

func TestService_Submit_DeliveryFailure(t *testing.T) {
	cause := errors.New("provider rejected message")
	n := &recordingNotifier{err: cause}
	svc := newTestService(t, n)

	receipt, err := svc.Submit(context.Background(), Submission{Name: "Grace"})

	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrs.CodeIs(err, apperrs.CodeDeliveryFailed))
	assert.False(t, apperrs.IsClient(err))

	// No retries: exactly one attempt per submission
	assert.Len(t, n.sent, 1)
}

func TestService_Submit_AcceptsEmptyFields(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestService(t, n)

	_, err := svc.Submit(context.Background(), Submission{})
	require.NoError(t, err)
	assert.Len(t, n.sent, 1)
}

func TestService_Submit_UniqueIDs(t *testing.T) {
	n := &recordingNotifier{}
	svc := NewService(n, newTestRenderer(t))

	first, err := svc.Submit(context.Background(), Submission{Name: "a"})
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), Submission{Name: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewNotifier(t *testing.T) {
	tests := []struct {
		delivery string
		want     any
	}{
		{config.DeliveryLog, &LogNotifier{}},
		{config.DeliveryResend, &ResendNotifier{}},
		{config.DeliveryMailgun, &MailgunNotifier{}},
	}

	for _, tt := range tests {
		t.Run(tt.delivery, func(t *testing.T) {
			cfg := &config.Config{
				Contact: config.ContactConfig{Delivery: tt.delivery},
				Resend:  config.ResendConfig{APIKey: "re_test"},
				Mailgun: config.MailgunConfig{Domain: "mg.knorx.tech", APIKey: "key-test"},
			}
			n, err := NewNotifier(cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.want, n)
			assert.Equal(t, tt.delivery, n.Name())
		})
	}

	_, err := NewNotifier(&config.Config{Contact: config.ContactConfig{Delivery: "fax"}})
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier()
	assert.NoError(t, n.Notify(context.Background(), Notification{ID: "x", Text: "Name: Ada"}))
}
