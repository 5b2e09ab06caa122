package events_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/events"
	"github.com/nfrund/marketplace/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the audit goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRecorderAndAudit(t *testing.T) {
	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, events.StartAudit(ctx, bus, logger))

	rec := events.NewRecorder(bus, logger)
	rec.LoginSucceeded(ctx, "a@example.com")
	rec.SignupCompleted(ctx, "b@example.com")
	rec.ProductCreated(ctx, domain.Product{ID: 2, Name: "Y", Price: 20})

	require.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, "storefront.login.succeeded") &&
			strings.Contains(s, "storefront.signup.completed") &&
			strings.Contains(s, "storefront.product.created")
	}, time.Second, 10*time.Millisecond)

	logged := out.String()
	assert.Contains(t, logged, "email=a@example.com")
	assert.Contains(t, logged, "email=b@example.com")
	assert.Contains(t, logged, "product_id=2")
	assert.Contains(t, logged, "component=audit")
	assert.Contains(t, logged, `event="A login returned a token"`)
	assert.Contains(t, logged, `event="The marketplace created a product from the admin form"`)
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, msg pubsub.Message) error { return assert.AnError }
func (failingPublisher) Close() error                                          { return nil }

func TestRecorder_PublishFailureIsLogged(t *testing.T) {
	var out syncBuffer
	rec := events.NewRecorder(failingPublisher{}, slog.New(slog.NewTextHandler(&out, nil)))

	rec.LoginSucceeded(context.Background(), "a@example.com")

	assert.Contains(t, out.String(), "Failed to publish event")
	assert.Contains(t, out.String(), "storefront.login.succeeded")
}
