package bots

import (
	"context"
	"regexp"
	"strings"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/intent"
)

// Classifier answers a message received on a channel.
type Classifier interface {
	Classify(ctx context.Context, ch chatlog.Channel, message string) intent.Response
}

// Processor connects incoming bot messages to the intent classifier.
type Processor struct {
	classifier Classifier
}

// NewProcessor creates a new message processor.
func NewProcessor(classifier Classifier) *Processor {
	return &Processor{classifier: classifier}
}

var (
	slackMention = regexp.MustCompile(`<@[A-Z0-9]+>`)
	teamsMention = regexp.MustCompile(`<at>[^<]*</at>`)
)

// HandleMessage strips platform mention markup and classifies the rest.
func (p *Processor) HandleMessage(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	text := stripMentions(msg.Platform, msg.Text)

	resp := p.classifier.Classify(ctx, channelFor(msg.Platform), text)

	return &OutgoingMessage{
		ChannelID:  msg.ChannelID,
		ThreadID:   msg.ThreadID,
		Text:       resp.Response,
		Intent:     resp.Intent,
		Confidence: resp.Confidence,
	}, nil
}

func stripMentions(p Platform, text string) string {
	switch p {
	case PlatformSlack:
		text = slackMention.ReplaceAllString(text, "")
	case PlatformTeams:
		text = teamsMention.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

func channelFor(p Platform) chatlog.Channel {
	if p == PlatformTeams {
		return chatlog.ChannelTeams
	}
	return chatlog.ChannelSlack
}
