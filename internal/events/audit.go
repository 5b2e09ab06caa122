package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/marketplace/internal/pubsub"
)

// StartAudit subscribes an audit logger to every storefront event. The
// subscriptions live until ctx is cancelled or the bus is closed.
func StartAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")

	accountHandler := func(event pubsub.Event[Account]) func(context.Context, string, Account) error {
		return func(ctx context.Context, actor string, a Account) error {
			logger.Info("Storefront event", "topic", event.Name(), "event", event.Description(), "email", a.Email)
			return nil
		}
	}

	if err := pubsub.On(ctx, sub, LoginSucceeded, accountHandler(LoginSucceeded)); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", LoginSucceeded.Name(), err)
	}
	if err := pubsub.On(ctx, sub, SignupCompleted, accountHandler(SignupCompleted)); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SignupCompleted.Name(), err)
	}
	err := pubsub.On(ctx, sub, ProductCreated, func(ctx context.Context, actor string, p Product) error {
		logger.Info("Storefront event", "topic", ProductCreated.Name(), "event", ProductCreated.Description(), "product_id", p.ID, "name", p.Name, "price", p.Price)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", ProductCreated.Name(), err)
	}
	return nil
}
