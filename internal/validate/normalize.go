package validate

import (
	"strings"
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
)

// NormalizeDraft validates a completed draft against every rule and, when all
// pass, produces the canonical inquiry record. The returned record carries no
// id, status or timestamps; the intake service stamps those at persistence.
// On failure the full field error map comes back and no record is produced.
func (v *Validator) NormalizeDraft(d *domain.DraftRequest) (*domain.CustomInquiry, domain.FieldErrors) {
	errs := merge(domain.FieldErrors{},
		v.Regions(d),
		v.TravelStyle(d),
		v.Dates(d),
		v.Travelers(d),
		v.Accommodation(d),
		v.Experiences(d),
		v.Budget(d),
		v.Contact(d),
	)
	if len(errs) > 0 {
		return nil, errs
	}

	arrival, _ := time.Parse(DateLayout, d.StartDate)
	departure, _ := time.Parse(DateLayout, d.EndDate)

	destinations := make([]string, 0, len(d.Regions))
	for _, r := range d.Regions {
		destinations = append(destinations, strings.TrimSpace(r))
	}

	// The persisted shape has no columns for style or accommodation, so both
	// ride along in interests as synthesized tokens after the experience tags.
	interests := make([]string, 0, len(d.Experiences)+2)
	for _, e := range d.Experiences {
		interests = append(interests, strings.TrimSpace(e))
	}
	interests = append(interests,
		"Travel Style: "+strings.TrimSpace(d.TravelStyle),
		"Accommodation: "+strings.TrimSpace(d.Accommodation),
	)

	return &domain.CustomInquiry{
		CustomerName:     strings.TrimSpace(d.Name),
		CustomerEmail:    strings.TrimSpace(d.Email),
		CustomerPhone:    ComposePhone(d.CountryCode, d.Phone),
		Destinations:     destinations,
		Interests:        interests,
		BudgetRange:      ComposeBudgetRange(d.BudgetMin, d.BudgetMax),
		ArrivalDate:      arrival,
		DepartureDate:    departure,
		NumberOfAdults:   d.Adults,
		NumberOfChildren: d.Children,
		NumberOfInfants:  d.Infants,
		Notes:            strings.TrimSpace(d.Notes),
	}, nil
}

// NormalizeBooking validates the single-step package form. Package existence
// and total amount are the intake service's concern.
func (v *Validator) NormalizeBooking(in *domain.BookingInput) (*domain.PackageBooking, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	if strings.TrimSpace(in.PackageID) == "" {
		errs["package_id"] = "package is required"
	}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if !v.emailCheck(strings.TrimSpace(in.Email)) {
		errs["email"] = "enter a valid email address"
	}
	if p := strings.TrimSpace(in.Phone); p != "" && !v.phoneCheck(p) {
		errs["phone"] = "enter a valid phone number"
	}

	travelDate, err := time.Parse(DateLayout, in.TravelDate)
	if err != nil {
		errs["travel_date"] = "enter a valid travel date (YYYY-MM-DD)"
	}
	if in.NumberOfPeople < 1 {
		errs["number_of_people"] = "at least one traveler is required"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.PackageBooking{
		PackageID:      strings.TrimSpace(in.PackageID),
		CustomerName:   strings.TrimSpace(in.Name),
		CustomerEmail:  strings.TrimSpace(in.Email),
		CustomerPhone:  ComposePhone(in.CountryCode, in.Phone),
		TravelDate:     travelDate,
		NumberOfPeople: in.NumberOfPeople,
	}, nil
}
