package intent

import (
	"fmt"

	"github.com/ziadkadry99/support-bot/internal/orders"
)

// Intent is the coarse category assigned to a message.
type Intent string

const (
	IntentOrderStatus Intent = "order_status"
	IntentFAQ         Intent = "faq"
	IntentGeneral     Intent = "general"
	IntentEmpty       Intent = "empty"
	IntentError       Intent = "error"
)

// Confidence values per intent. They are heuristics, not probabilities.
const (
	ConfidenceOrderStatus = 90
	ConfidenceFAQ         = 85
	ConfidenceGeneral     = 50
	ConfidenceNone        = 0
)

// FAQSource marks responses that came from the FAQ catalog.
const FAQSource = "faq_database"

const (
	emptyPrompt    = "Please type a message so I can help you."
	missingPayload = "Please provide JSON data with a message"
)

// Response is the envelope returned for every chat message.
type Response struct {
	Response    string         `json:"response"`
	Intent      Intent         `json:"intent"`
	Confidence  int            `json:"confidence"`
	OrderInfo   *orders.Record `json:"order_info,omitempty"`
	Source      string         `json:"source,omitempty"`
	FAQQuestion string         `json:"faq_question,omitempty"`
}

// ErrorResponse is returned when a request carried no usable payload.
func ErrorResponse() Response {
	return Response{Response: missingPayload, Intent: IntentError, Confidence: ConfidenceNone}
}

// EmptyResponse is returned for blank messages.
func EmptyResponse() Response {
	return Response{Response: emptyPrompt, Intent: IntentEmpty, Confidence: ConfidenceNone}
}

// orderSentence renders the status line for an order. ref is the reference
// as the customer wrote it.
func orderSentence(ref string, r *orders.Record) string {
	switch r.Status {
	case orders.StatusShipped:
		return fmt.Sprintf("Order %s is shipped via %s. Tracking: %s. Estimated delivery: %s.",
			ref, r.Carrier, r.TrackingNumber, r.EstimatedDelivery)
	case orders.StatusDelivered:
		return fmt.Sprintf("Order %s was delivered on %s. Product: %s", ref, r.DeliveryDate, r.Product)
	default:
		return fmt.Sprintf("Order %s is %s. Estimated delivery: %s.", ref, r.Status, r.EstimatedDelivery)
	}
}
