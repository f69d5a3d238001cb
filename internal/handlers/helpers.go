package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/logging"
	"github.com/secureshop/backend/internal/mykafka"
)

// publish sends a domain event with a bounded timeout. Publish failures are
// logged, never surfaced to the client.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]interface{}) {
	if producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
