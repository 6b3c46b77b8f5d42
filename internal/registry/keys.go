package registry

import (
	"log/slog"

	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/nfrund/portfolio/internal/reveal"
)

// Keys for services the server shares with its modules.
var (
	RevealTrackerKey = Key[*reveal.Tracker]("reveal.tracker")
	SubscriberKey    = Key[pubsub.Subscriber]("pubsub.subscriber")
	LoggerKey        = Key[*slog.Logger]("app.logger")
)

// Logger returns the registered logger, or the default logger when none is set.
func Logger(r *Registry) *slog.Logger {
	if logger, ok := Get(r, LoggerKey); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
