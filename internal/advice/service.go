// Package advice answers canned legal questions by keyword-matching the
// visitor's query against a static topic table. There is no language
// understanding here and none is intended.
package advice

import (
	"strings"
	"unicode"
)

// Response is the rendered answer for one query.
type Response struct {
	Topic      string        `json:"topic,omitempty"`
	Guidance   string        `json:"guidance"`
	Cases      []CaseSummary `json:"cases,omitempty"`
	Disclaimer string        `json:"disclaimer"`
	Matched    bool          `json:"matched"`
}

// Service scores topics against queries.
type Service struct{}

// NewService returns the advice engine over the built-in topic table.
func NewService() *Service {
	return &Service{}
}

// Respond picks the topic sharing the most keywords with the query. Ties go
// to the earlier topic in the table; zero overlap yields the fallback
// answer.
func (s *Service) Respond(query string) Response {
	tokens := tokenize(query)

	best := -1
	bestScore := 0
	for i, t := range topics {
		score := 0
		for _, kw := range t.Keywords {
			if _, ok := tokens[kw]; ok {
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return Response{Guidance: fallbackGuidance, Disclaimer: disclaimer}
	}

	t := topics[best]
	return Response{
		Topic:      t.Name,
		Guidance:   t.Guidance,
		Cases:      t.Cases,
		Disclaimer: disclaimer,
		Matched:    true,
	}
}

// Topics lists the names of the known topics.
func (s *Service) Topics() []string {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return names
}

func tokenize(query string) map[string]struct{} {
	out := map[string]struct{}{}
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
