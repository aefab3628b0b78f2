package booking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kohtao/scuba-reservation/internal/model"
)

// emailRe accepts the local@domain.tld shape: runs of non-whitespace,
// non-@ characters around a single "@" with a dot somewhere in the domain.
// No deeper RFC compliance is attempted.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s is a usable email address. The empty
// string is invalid; email is effectively mandatory wherever this check
// is invoked.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}

// ContactComplete reports whether one diver contact carries both a name
// and a phone number. The country code is chosen from a fixed closed set
// and is never validated further.
func ContactComplete(c model.DiverContact) bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.PhoneNumber) != ""
}

// Valid reports whether the draft may be submitted. It is the logical AND
// of every applicable rule: every diver contact complete, a valid email, a
// chosen course, and pickup location plus area whenever pickup is
// requested. Submission must be refused outright while this is false;
// nothing is ever partially persisted.
func (d *Draft) Valid() bool {
	return len(d.Problems()) == 0
}

// Problems lists the human-readable reasons the draft cannot be submitted
// yet, in a stable order. An empty slice means the draft is valid.
func (d *Draft) Problems() []string {
	problems := make([]string, 0)
	for i, c := range d.Contacts {
		if !ContactComplete(c) {
			problems = append(problems, "diver "+strconv.Itoa(i+1)+" needs a name and phone number")
		}
	}
	if !IsValidEmail(d.Email) {
		problems = append(problems, "a valid email is required")
	}
	if strings.TrimSpace(d.CourseID) == "" {
		problems = append(problems, "a course must be selected")
	}
	if d.NeedsPickup {
		if strings.TrimSpace(d.PickupLocation) == "" {
			problems = append(problems, "pickup location is required")
		}
		if strings.TrimSpace(d.PickupArea) == "" {
			problems = append(problems, "pickup area is required")
		}
	}
	return problems
}
