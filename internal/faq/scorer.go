package faq

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Scoring weights. Tests and existing catalogs are tuned against these exact
// values, so they are not meant to be adjusted.
const (
	minMessageRunes = 3

	phraseWindow    = 5
	phraseMinWords  = 3
	phraseMinHits   = 2
	phraseBonus     = 3
	keywordPoint    = 1
	multiKeywordMin = 2
	multiKeyword    = 2
	noOverlapCost   = 2

	acceptThreshold = 2
)

var greetings = map[string]bool{
	"hello": true,
	"hi":    true,
	"hey":   true,
}

// Breakdown explains how an entry's score was reached.
type Breakdown struct {
	PhraseHits   int `json:"phrase_hits"`
	PhraseBonus  int `json:"phrase_bonus"`
	KeywordHits  int `json:"keyword_hits"`
	KeywordBonus int `json:"keyword_bonus"`
	MultiBonus   int `json:"multi_keyword_bonus"`
	Penalty      int `json:"penalty"`
	Total        int `json:"total"`
}

// Match is the winning entry for a message.
type Match struct {
	Category string    `json:"category"`
	Entry    Entry     `json:"entry"`
	Score    Breakdown `json:"score"`
}

// prepared caches the lower-cased question tokens of one entry.
type prepared struct {
	category string
	entry    Entry
	lead     []string
	words    map[string]struct{}
	wordLen  int
}

// Scorer finds the FAQ entry that best matches a message. It is safe for
// concurrent use.
type Scorer struct {
	entries []prepared
}

// NewScorer precomputes question tokens for every entry in the catalog.
func NewScorer(c *Catalog) *Scorer {
	s := &Scorer{}
	if c == nil {
		return s
	}
	for _, cat := range c.categories {
		for _, e := range cat.Entries {
			words := strings.Fields(strings.ToLower(e.Question))
			lead := words
			if len(lead) > phraseWindow {
				lead = lead[:phraseWindow]
			}
			s.entries = append(s.entries, prepared{
				category: cat.Name,
				entry:    e,
				lead:     lead,
				words:    wordSet(words),
				wordLen:  len(words),
			})
		}
	}
	return s
}

// FindBestMatch returns the best entry for message, or false when nothing
// clears the acceptance threshold.
func (s *Scorer) FindBestMatch(message string) (*Entry, bool) {
	m, ok := s.BestMatch(message)
	if !ok {
		return nil, false
	}
	return &m.Entry, true
}

// BestMatch scans every entry in catalog order. A later entry replaces the
// current best only with a strictly higher score, so ties go to the first.
func (s *Scorer) BestMatch(message string) (Match, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if utf8.RuneCountInString(lower) < minMessageRunes || greetings[lower] {
		return Match{}, false
	}

	msgWords := wordSet(strings.Fields(lower))

	var (
		best    Match
		found   bool
		highest int
	)
	for i := range s.entries {
		p := &s.entries[i]
		b := score(lower, msgWords, p)
		if b.Total > highest && b.Total >= acceptThreshold {
			highest = b.Total
			best = Match{Category: p.category, Entry: p.entry, Score: b}
			found = true
		}
	}
	return best, found
}

// Rank returns every entry that clears the acceptance threshold, highest
// score first. Equal scores keep catalog order, so Rank(m, 1) agrees with
// BestMatch. limit <= 0 means no limit.
func (s *Scorer) Rank(message string, limit int) []Match {
	lower := strings.ToLower(strings.TrimSpace(message))
	if utf8.RuneCountInString(lower) < minMessageRunes || greetings[lower] {
		return nil
	}

	msgWords := wordSet(strings.Fields(lower))

	var matches []Match
	for i := range s.entries {
		p := &s.entries[i]
		if b := score(lower, msgWords, p); b.Total >= acceptThreshold {
			matches = append(matches, Match{Category: p.category, Entry: p.entry, Score: b})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Total > matches[j].Score.Total
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Score returns the breakdown for a single entry, mainly for diagnostics.
func (s *Scorer) Score(message string, e Entry) Breakdown {
	lower := strings.ToLower(strings.TrimSpace(message))
	words := strings.Fields(strings.ToLower(e.Question))
	lead := words
	if len(lead) > phraseWindow {
		lead = lead[:phraseWindow]
	}
	p := prepared{entry: e, lead: lead, words: wordSet(words), wordLen: len(words)}
	return score(lower, wordSet(strings.Fields(lower)), &p)
}

func score(lower string, msgWords map[string]struct{}, p *prepared) Breakdown {
	var b Breakdown

	if p.wordLen > phraseMinWords {
		for _, w := range p.lead {
			if strings.Contains(lower, w) {
				b.PhraseHits++
			}
		}
		if b.PhraseHits >= phraseMinHits {
			b.PhraseBonus = phraseBonus
		}
	}

	for _, kw := range p.entry.Keywords {
		if strings.Contains(lower, kw) {
			b.KeywordHits++
		}
	}
	b.KeywordBonus = b.KeywordHits * keywordPoint
	if b.KeywordHits >= multiKeywordMin {
		b.MultiBonus = multiKeyword
	}

	if !overlaps(msgWords, p.words) {
		b.Penalty = noOverlapCost
	}

	b.Total = b.PhraseBonus + b.KeywordBonus + b.MultiBonus - b.Penalty
	return b
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlaps(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}
