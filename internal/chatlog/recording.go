package chatlog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/support-bot/internal/intent"
)

// Classifier produces a response for one customer message.
type Classifier interface {
	Classify(message string) intent.Response
}

// Recording classifies messages and appends the outcome to the event log.
// A nil store turns it into a pass-through.
type Recording struct {
	next   Classifier
	store  *Store
	logger zerolog.Logger
}

// NewRecording wraps next. store may be nil.
func NewRecording(next Classifier, store *Store, logger zerolog.Logger) *Recording {
	return &Recording{next: next, store: store, logger: logger}
}

// Classify answers message and records the result. A failure to record is
// logged and does not affect the response.
func (r *Recording) Classify(ctx context.Context, ch Channel, message string) intent.Response {
	resp := r.next.Classify(message)
	if r.store == nil {
		return resp
	}

	ev := Event{Channel: ch, Intent: resp.Intent, Confidence: resp.Confidence}
	if err := r.store.Record(ctx, ev); err != nil {
		r.logger.Warn().Err(err).Str("channel", string(ch)).Msg("recording chat event")
	}
	return resp
}

// Store returns the backing event log, or nil.
func (r *Recording) Store() *Store {
	return r.store
}
