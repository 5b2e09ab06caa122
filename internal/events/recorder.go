package events

import (
	"context"
	"log/slog"

	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/pubsub"
)

// Recorder publishes storefront events. Publishing is best effort: failures
// are logged and never reach the caller.
type Recorder struct {
	pub    pubsub.Publisher
	logger *slog.Logger
}

// NewRecorder creates a Recorder publishing on pub.
func NewRecorder(pub pubsub.Publisher, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{pub: pub, logger: logger}
}

// LoginSucceeded announces a login that produced a token.
func (r *Recorder) LoginSucceeded(ctx context.Context, email string) {
	r.report(LoginSucceeded.Name(), pubsub.Publish(ctx, r.pub, LoginSucceeded, email, Account{Email: email}))
}

// SignupCompleted announces an accepted signup.
func (r *Recorder) SignupCompleted(ctx context.Context, email string) {
	r.report(SignupCompleted.Name(), pubsub.Publish(ctx, r.pub, SignupCompleted, email, Account{Email: email}))
}

// ProductCreated announces a product created through the admin form.
func (r *Recorder) ProductCreated(ctx context.Context, p domain.Product) {
	r.report(ProductCreated.Name(), pubsub.Publish(ctx, r.pub, ProductCreated, "", productPayload(p)))
}

func (r *Recorder) report(topic string, err error) {
	if err != nil {
		r.logger.Warn("Failed to publish event", "topic", topic, "error", err)
	}
}
