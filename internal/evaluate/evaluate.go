// Package evaluate replays labelled messages through the classifier and
// reports how many were routed to the expected intent.
package evaluate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/support-bot/internal/intent"
	"github.com/ziadkadry99/support-bot/internal/progress"
)

// ErrInvalidCase is returned for cases without an expected intent or with
// an unknown one.
var ErrInvalidCase = errors.New("invalid evaluation case")

// Case is one labelled message.
type Case struct {
	Message string        `yaml:"message"`
	Intent  intent.Intent `yaml:"intent"`
	// FAQQuestion, when set, must equal the matched FAQ question.
	FAQQuestion string `yaml:"faq_question,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

var knownIntents = map[intent.Intent]bool{
	intent.IntentOrderStatus: true,
	intent.IntentFAQ:         true,
	intent.IntentGeneral:     true,
	intent.IntentEmpty:       true,
}

// LoadCases reads a YAML case file.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cases %s: %w", path, err)
	}

	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing cases %s: %w", path, err)
	}

	for i, c := range f.Cases {
		if !knownIntents[c.Intent] {
			return nil, fmt.Errorf("%w: case %d (%q) has intent %q", ErrInvalidCase, i+1, c.Message, c.Intent)
		}
		if c.FAQQuestion != "" && c.Intent != intent.IntentFAQ {
			return nil, fmt.Errorf("%w: case %d sets faq_question on a %s case", ErrInvalidCase, i+1, c.Intent)
		}
	}
	return f.Cases, nil
}

// Classifier produces a response for one message.
type Classifier interface {
	Classify(message string) intent.Response
}

// Result is the outcome of one case.
type Result struct {
	Case   Case
	Got    intent.Response
	Passed bool
	Reason string
}

// IntentStats counts passes per expected intent.
type IntentStats struct {
	Total  int
	Passed int
}

// Report summarizes an evaluation run.
type Report struct {
	Total    int
	Passed   int
	ByIntent map[intent.Intent]IntentStats
	Failures []Result
}

// Accuracy is the pass ratio in [0,1]. An empty run counts as fully accurate.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 1
	}
	return float64(r.Passed) / float64(r.Total)
}

// Run classifies every case in order.
func Run(c Classifier, cases []Case, rep progress.Reporter) Report {
	if rep == nil {
		rep = progress.Nop{}
	}
	report := Report{ByIntent: make(map[intent.Intent]IntentStats)}

	rep.Start(len(cases))
	for i, tc := range cases {
		res := check(tc, c.Classify(tc.Message))

		report.Total++
		st := report.ByIntent[tc.Intent]
		st.Total++
		if res.Passed {
			report.Passed++
			st.Passed++
		} else {
			report.Failures = append(report.Failures, res)
		}
		report.ByIntent[tc.Intent] = st

		rep.Update(i+1, truncate(tc.Message, 40))
	}
	rep.Finish()

	return report
}

func check(tc Case, got intent.Response) Result {
	res := Result{Case: tc, Got: got, Passed: true}
	switch {
	case got.Intent != tc.Intent:
		res.Passed = false
		res.Reason = fmt.Sprintf("expected %s, got %s", tc.Intent, got.Intent)
	case tc.FAQQuestion != "" && got.FAQQuestion != tc.FAQQuestion:
		res.Passed = false
		res.Reason = fmt.Sprintf("expected FAQ %q, got %q", tc.FAQQuestion, got.FAQQuestion)
	}
	return res
}

// Write prints a human-readable summary.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Accuracy: %.1f%% (%d/%d)\n", r.Accuracy()*100, r.Passed, r.Total)

	intents := make([]string, 0, len(r.ByIntent))
	for in := range r.ByIntent {
		intents = append(intents, string(in))
	}
	sort.Strings(intents)
	for _, in := range intents {
		st := r.ByIntent[intent.Intent(in)]
		fmt.Fprintf(w, "  %-14s %d/%d\n", in, st.Passed, st.Total)
	}

	if len(r.Failures) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFailures (%d):\n", len(r.Failures))
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  - %q: %s\n", f.Case.Message, f.Reason)
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
