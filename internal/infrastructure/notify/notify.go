// Package notify carries user-visible notices out of the core services.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// LogNotifier renders notices through the structured logger. Hosting UIs
// replace it with their own toast implementation.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) { n.log.Info().Str("notice", "success").Msg(msg) }
func (n *LogNotifier) Error(msg string)   { n.log.Warn().Str("notice", "error").Msg(msg) }
func (n *LogNotifier) Info(msg string)    { n.log.Info().Str("notice", "info").Msg(msg) }
