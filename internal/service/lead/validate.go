package lead

import (
	"regexp"
	"strings"
)

// workEmailPattern is the minimal local@domain.tld shape: it rejects
// whitespace and bare domains, nothing more. Deliverability is not
// checked here.
var workEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// personalDomains are consumer mail providers rejected for lead capture
// because a submission from one cannot be routed to a company.
var personalDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
	"aol.com":     {},
}

// Rule is one named validation predicate with its user-facing message.
// The same ordered list drives server-side validation and is exposed to
// the front end so the browser copy cannot drift.
type Rule struct {
	Field   string
	Message string
	Valid   func(s Submission) bool
}

// Rules returns the ordered validation rules for a demo-request
// submission. Validation short-circuits at the first failing rule.
func Rules() []Rule {
	return []Rule{
		{
			Field:   "firstName",
			Message: "Please enter your first name.",
			Valid:   func(s Submission) bool { return strings.TrimSpace(s.FirstName) != "" },
		},
		{
			Field:   "lastName",
			Message: "Please enter your last name.",
			Valid:   func(s Submission) bool { return strings.TrimSpace(s.LastName) != "" },
		},
		{
			Field:   "email",
			Message: "Please enter a valid work email.",
			Valid:   func(s Submission) bool { return workEmailPattern.MatchString(strings.TrimSpace(s.Email)) },
		},
		{
			Field:   "email",
			Message: "Please use a company email so we can route your request correctly.",
			Valid: func(s Submission) bool {
				_, personal := personalDomains[emailDomain(s.Email)]
				return !personal
			},
		},
		{
			Field:   "company",
			Message: "Please enter your company name.",
			Valid:   func(s Submission) bool { return strings.TrimSpace(s.Company) != "" },
		},
	}
}

// Validate runs the rules in order and returns the first failure, or
// nil when the submission is acceptable.
func Validate(s Submission) *ValidationError {
	for _, r := range Rules() {
		if !r.Valid(s) {
			return &ValidationError{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}

// emailDomain extracts the part after the last '@', lowercased, so the
// personal-domain check is case-insensitive.
func emailDomain(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
