// Package licenses answers business-license questions from static lookup
// tables: category-specific licenses plus the state's general registration.
package licenses

import (
	"sort"
	"strings"
)

// Result is the rendered answer for one search.
type Result struct {
	State        string        `json:"state"`
	Category     string        `json:"category"`
	Found        bool          `json:"found"`
	Registration string        `json:"registration,omitempty"`
	Requirements []Requirement `json:"requirements,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// Service performs lookups over the built-in tables.
type Service struct{}

// NewService returns the license finder.
func NewService() *Service {
	return &Service{}
}

// Search returns the license requirements for the given state and business
// category. Unknown inputs produce an explicit not-found result rather than
// an error.
func (s *Service) Search(state, category string) Result {
	stateCode := strings.ToUpper(strings.TrimSpace(state))
	categoryKey := strings.ToLower(strings.TrimSpace(category))

	out := Result{State: stateCode, Category: categoryKey}

	reg, stateOK := registrationByState[stateCode]
	reqs, categoryOK := requirementsByCategory[categoryKey]

	if !stateOK && !categoryOK {
		out.Message = "No information for that state or business category."
		return out
	}
	if !stateOK {
		out.Message = "No information for that state; category requirements shown are typical nationwide."
		out.Requirements = reqs
		return out
	}
	if !categoryOK {
		out.Message = "Unknown business category; only the general state registration is shown."
		out.Registration = "Register with the " + reg.Agency + " (filing fee " + reg.FilingFeeUSD + ")."
		return out
	}

	out.Found = true
	out.Registration = "Register with the " + reg.Agency + " (filing fee " + reg.FilingFeeUSD + ")."
	out.Requirements = reqs
	return out
}

// Categories lists the known business categories, sorted.
func (s *Service) Categories() []string {
	out := make([]string, 0, len(requirementsByCategory))
	for k := range requirementsByCategory {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// States lists the state codes with registration data, sorted.
func (s *Service) States() []string {
	out := make([]string, 0, len(registrationByState))
	for k := range registrationByState {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
