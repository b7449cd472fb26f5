// Package faq serves the static frequently-asked-questions list.
package faq

// Entry is one question/answer pair.
type Entry struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var entries = []Entry{
	{ID: 1, Question: "Is this legal advice?", Answer: "No. The kiosk provides general legal information from canned sources. For advice about your specific situation, consult a licensed attorney."},
	{ID: 2, Question: "Is my data sent anywhere?", Answer: "No. Everything you enter stays on this device; there is no server component and no sync."},
	{ID: 3, Question: "Do I need an account?", Answer: "Browsing is open, but you need an account so the kiosk can keep a history of your questions."},
	{ID: 4, Question: "How do I find out which licenses my business needs?", Answer: "Use the license finder: pick your state and business category and it lists the typical licenses, fees, and issuing agencies."},
	{ID: 5, Question: "Why was my login rejected after my account worked before?", Answer: "An administrator may have deactivated the account. Deactivated accounts cannot log in until reactivated."},
	{ID: 6, Question: "How accurate are the fees shown?", Answer: "Fees are typical ranges collected from public sources and change often; always confirm with the issuing agency."},
	{ID: 7, Question: "Can I delete my account?", Answer: "Accounts are deactivated rather than deleted so the usage history stays consistent."},
	{ID: 8, Question: "Who can see the analytics?", Answer: "Only the administrator account can view aggregate usage reports. Reports never include question text tied to names."},
}

// Service reads the FAQ table.
type Service struct{}

// NewService returns the FAQ reader.
func NewService() *Service {
	return &Service{}
}

// List returns every entry.
func (s *Service) List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// View returns the entry with the given id, or false.
func (s *Service) View(id int) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
