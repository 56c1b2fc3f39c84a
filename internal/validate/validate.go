// Package validate holds the pure validation and normalization rules for
// intake input. Nothing here touches storage; callers persist the result.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
)

// DateLayout is the wire format for dates; ISO-8601 calendar dates.
const DateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,14}$`)
)

// CheckFunc reports whether a single formatted value is acceptable.
type CheckFunc func(string) bool

// Validator applies the field-level intake rules. Email and phone checks are
// pluggable so locale rules can evolve without touching the wizard.
type Validator struct {
	emailCheck CheckFunc
	phoneCheck CheckFunc
}

type Option func(*Validator)

func WithEmailCheck(fn CheckFunc) Option {
	return func(v *Validator) { v.emailCheck = fn }
}

func WithPhoneCheck(fn CheckFunc) Option {
	return func(v *Validator) { v.phoneCheck = fn }
}

func New(opts ...Option) *Validator {
	v := &Validator{
		emailCheck: emailRe.MatchString,
		phoneCheck: phoneRe.MatchString,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Regions requires a non-empty set of non-blank region names. Structural
// membership against the catalog is deliberately not enforced here; staff
// deactivating an option mid-session must not invalidate a draft.
func (v *Validator) Regions(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if len(d.Regions) == 0 {
		errs["regions"] = "select at least one region"
		return errs
	}
	for _, r := range d.Regions {
		if strings.TrimSpace(r) == "" {
			errs["regions"] = "region names must not be blank"
			return errs
		}
	}
	return errs
}

func (v *Validator) TravelStyle(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(d.TravelStyle) == "" {
		errs["travel_style"] = "select a travel style"
	}
	return errs
}

// Dates coerces both bounds from ISO-8601 and requires start strictly before
// end. An inverted range gets its own message rather than a per-field one.
func (v *Validator) Dates(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}

	start, err := time.Parse(DateLayout, d.StartDate)
	if err != nil {
		errs["start_date"] = "enter a valid arrival date (YYYY-MM-DD)"
	}
	end, err := time.Parse(DateLayout, d.EndDate)
	if err != nil {
		errs["end_date"] = "enter a valid departure date (YYYY-MM-DD)"
	}
	if len(errs) > 0 {
		return errs
	}

	if !start.Before(end) {
		errs["dates"] = "departure date must be after arrival date"
	}
	return errs
}

func (v *Validator) Travelers(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if d.Adults < 0 || d.Children < 0 || d.Infants < 0 {
		errs["travelers"] = "traveler counts must not be negative"
		return errs
	}
	if d.Adults+d.Children+d.Infants < 1 {
		errs["travelers"] = "at least one traveler is required"
	}
	return errs
}

func (v *Validator) Accommodation(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(d.Accommodation) == "" {
		errs["accommodation"] = "select an accommodation type"
	}
	return errs
}

// Experiences accepts any set, including an empty one; entries must not be
// blank strings.
func (v *Validator) Experiences(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, e := range d.Experiences {
		if strings.TrimSpace(e) == "" {
			errs["experiences"] = "experience tags must not be blank"
			return errs
		}
	}
	return errs
}

func (v *Validator) Budget(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if d.BudgetMin <= 0 || d.BudgetMax <= 0 {
		errs["budget"] = "budget bounds must be positive"
		return errs
	}
	if d.BudgetMin > d.BudgetMax {
		errs["budget"] = "minimum budget must not exceed maximum"
	}
	return errs
}

func (v *Validator) Contact(d *domain.DraftRequest) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "name is required"
	}
	if !v.emailCheck(strings.TrimSpace(d.Email)) {
		errs["email"] = "enter a valid email address"
	}
	if p := strings.TrimSpace(d.Phone); p != "" && !v.phoneCheck(p) {
		errs["phone"] = "enter a valid phone number"
	}
	return errs
}

// ComposePhone joins the optional country code with the local number the way
// the persisted records store it.
func ComposePhone(countryCode, phone string) string {
	return strings.TrimSpace(strings.TrimSpace(countryCode) + " " + strings.TrimSpace(phone))
}

// ComposeBudgetRange renders the persisted budget string, e.g. "1500 - 2500 USD".
func ComposeBudgetRange(min, max int64) string {
	return fmt.Sprintf("%d - %d USD", min, max)
}

// ComposeMessage renders the legacy admin-view message from the stored
// fields. Presentation only; the record keeps dates and notes separate.
func ComposeMessage(arrival, departure time.Time, notes string) string {
	msg := fmt.Sprintf("Travel dates: %s to %s",
		arrival.Format(DateLayout), departure.Format(DateLayout))
	if strings.TrimSpace(notes) != "" {
		msg += "\n\n" + notes
	}
	return msg
}

func merge(dst domain.FieldErrors, srcs ...domain.FieldErrors) domain.FieldErrors {
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}
