package intent

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// FallbackReplies are used when neither an order nor an FAQ matches.
var FallbackReplies = []string{
	"I understand you're asking about something. I can help you with order status, returns, technical issues, or general questions. Could you provide more details?",
	"I'd love to help! I'm best at assisting with order tracking, returns, technical problems, or product questions. What specific issue can I help with?",
	"I'm here to help with customer support questions. Could you tell me more about what you need assistance with?",
}

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// RoundRobin cycles through the options in order.
type RoundRobin struct {
	next atomic.Uint64
}

// Pick implements Picker.
func (r *RoundRobin) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next.Add(1) - 1) % uint64(n))
}

// RandomPicker picks uniformly from a seeded source.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a picker whose sequence is fully determined by seed.
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick implements Picker.
func (r *RandomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
