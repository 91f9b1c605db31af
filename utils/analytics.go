// File: utils/analytics.go
package utils

import (
	"context"
	"time"

	"tutorlink/config"

	"go.uber.org/zap"
)

// AnalyticsEvent is a fire-and-forget usage event reported by clients or services.
type AnalyticsEvent struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
}

// TrackEvent records an analytics event. In development the event is only
// logged; in production a per-event counter is incremented in Redis.
// Failures are logged and swallowed so tracking never disturbs callers.
func TrackEvent(ev AnalyticsEvent) {
	logger := GetLogger()

	if ev.Event == "" {
		logger.Warn("TrackEvent: dropping event with empty name")
		return
	}

	if !config.IsProduction() {
		logger.Debug("Analytics event",
			zap.String("event", ev.Event),
			zap.String("userID", ev.UserID),
			zap.Any("properties", ev.Properties))
		return
	}

	client := GetAnalyticsClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "analytics:" + ev.Event + ":" + time.Now().Format("2006-01-02")
	if err := client.Incr(ctx, key).Err(); err != nil {
		logger.Warn("TrackEvent: failed to record event", zap.String("event", ev.Event), zap.Error(err))
	}
}
