package intent

import (
	"strings"

	"github.com/ziadkadry99/support-bot/internal/faq"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

// Router classifies chat messages. It holds only immutable data plus the
// fallback picker, so one Router can serve any number of goroutines.
type Router struct {
	orders  *orders.Table
	scorer  *faq.Scorer
	picker  Picker
	replies []string
}

// Option customizes a Router.
type Option func(*Router)

// WithPicker sets the fallback reply picker. The default is round robin.
func WithPicker(p Picker) Option {
	return func(r *Router) { r.picker = p }
}

// WithFallbackReplies replaces the generic replies. Empty input is ignored.
func WithFallbackReplies(replies []string) Option {
	return func(r *Router) {
		if len(replies) > 0 {
			r.replies = append([]string(nil), replies...)
		}
	}
}

// NewRouter builds a Router over an order table and FAQ scorer. Either may be
// nil, in which case that stage never matches.
func NewRouter(table *orders.Table, scorer *faq.Scorer, opts ...Option) *Router {
	r := &Router{
		orders:  table,
		scorer:  scorer,
		picker:  &RoundRobin{},
		replies: FallbackReplies,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.orders == nil {
		r.orders = orders.NewTable(nil)
	}
	if r.scorer == nil {
		r.scorer = faq.NewScorer(nil)
	}
	return r
}

// Classify runs the order, FAQ and fallback stages in that order.
func (r *Router) Classify(message string) Response {
	text := strings.TrimSpace(message)
	if text == "" {
		return EmptyResponse()
	}

	// A reference that doesn't resolve falls through to the FAQ stage.
	if ref, ok := orders.ExtractReference(text); ok {
		if rec, err := r.orders.Lookup(ref); err == nil {
			return Response{
				Response:   orderSentence(ref, rec),
				Intent:     IntentOrderStatus,
				Confidence: ConfidenceOrderStatus,
				OrderInfo:  rec,
			}
		}
	}

	if entry, ok := r.scorer.FindBestMatch(text); ok {
		return Response{
			Response:    entry.Answer,
			Intent:      IntentFAQ,
			Confidence:  ConfidenceFAQ,
			Source:      FAQSource,
			FAQQuestion: entry.Question,
		}
	}

	return Response{
		Response:   r.replies[r.picker.Pick(len(r.replies))],
		Intent:     IntentGeneral,
		Confidence: ConfidenceGeneral,
	}
}

// Orders exposes the order table for direct lookups.
func (r *Router) Orders() *orders.Table { return r.orders }

// Scorer exposes the FAQ scorer.
func (r *Router) Scorer() *faq.Scorer { return r.scorer }
