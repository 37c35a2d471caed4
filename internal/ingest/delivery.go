package ingest

import (
	"context"

	"go.uber.org/zap"
)

type deliveryKey struct{}

// WithDeliveryID tags ctx with the webhook delivery id used in log lines.
func WithDeliveryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deliveryKey{}, id)
}

// DeliveryID returns the delivery id carried by ctx, if any.
func DeliveryID(ctx context.Context) string {
	id, _ := ctx.Value(deliveryKey{}).(string)
	return id
}

func deliveryField(ctx context.Context) zap.Field {
	return zap.String("delivery_id", DeliveryID(ctx))
}
