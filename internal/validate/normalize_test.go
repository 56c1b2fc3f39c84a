package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tripdesk/internal/domain"
)

func validDraft() *domain.DraftRequest {
	return &domain.DraftRequest{
		Regions:       []string{"Hill Country"},
		TravelStyle:   "Adventure",
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-10",
		Adults:        2,
		Children:      0,
		Infants:       0,
		Accommodation: "4-Star Boutique",
		Experiences:   []string{"Hiking", "Wildlife"},
		BudgetMin:     1500,
		BudgetMax:     2500,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		CountryCode:   "+94",
		Phone:         "771234567",
		Notes:         "Window seats please.",
	}
}

func TestNormalizeDraft_Success(t *testing.T) {
	v := New()

	inq, errs := v.NormalizeDraft(validDraft())
	require.Empty(t, errs)
	require.NotNil(t, inq)

	assert.Equal(t, []string{"Hill Country"}, inq.Destinations)
	assert.Equal(t, "1500 - 2500 USD", inq.BudgetRange)
	assert.Equal(t, 2, inq.NumberOfAdults)
	assert.Equal(t, 0, inq.NumberOfChildren)
	assert.Equal(t, "Jane Doe", inq.CustomerName)
	assert.Equal(t, "+94 771234567", inq.CustomerPhone)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), inq.ArrivalDate)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), inq.DepartureDate)
	assert.Equal(t, "Window seats please.", inq.Notes)

	// style and accommodation ride along in interests
	assert.Equal(t, []string{
		"Hiking", "Wildlife",
		"Travel Style: Adventure",
		"Accommodation: 4-Star Boutique",
	}, inq.Interests)

	// normalization stamps nothing the store owns
	assert.Empty(t, inq.ID)
	assert.Empty(t, inq.Status)
}

func TestNormalizeDraft_InvertedDates(t *testing.T) {
	v := New()

	draft := validDraft()
	draft.StartDate = "2025-03-10"
	draft.EndDate = "2025-03-01"

	inq, errs := v.NormalizeDraft(draft)
	assert.Nil(t, inq)
	assert.Contains(t, errs, "dates")
}

func TestNormalizeDraft_NoTravelers(t *testing.T) {
	v := New()

	draft := validDraft()
	draft.Adults = 0
	draft.Children = 0
	draft.Infants = 0

	inq, errs := v.NormalizeDraft(draft)
	assert.Nil(t, inq)
	assert.Contains(t, errs, "travelers")
}

func TestNormalizeDraft_CollectsEveryFailingField(t *testing.T) {
	v := New()

	inq, errs := v.NormalizeDraft(&domain.DraftRequest{})
	assert.Nil(t, inq)

	for _, field := range []string{"regions", "travel_style", "start_date", "end_date", "travelers", "accommodation", "budget", "name", "email"} {
		assert.Contains(t, errs, field)
	}
}

func TestNormalizeDraft_IsValidationError(t *testing.T) {
	v := New()

	_, errs := v.NormalizeDraft(&domain.DraftRequest{})
	assert.ErrorIs(t, errs, domain.ErrValidation)
}

func TestNormalizeBooking_Success(t *testing.T) {
	v := New()

	b, errs := v.NormalizeBooking(&domain.BookingInput{
		PackageID:      "pkg-1",
		Name:           "John Doe",
		Email:          "john@example.com",
		TravelDate:     "2025-06-15",
		NumberOfPeople: 3,
	})
	require.Empty(t, errs)
	require.NotNil(t, b)

	assert.Equal(t, "pkg-1", b.PackageID)
	assert.Equal(t, 3, b.NumberOfPeople)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), b.TravelDate)
	assert.Nil(t, b.TotalAmount)
}

func TestNormalizeBooking_Invalid(t *testing.T) {
	v := New()

	b, errs := v.NormalizeBooking(&domain.BookingInput{
		Email:          "nope",
		TravelDate:     "soon",
		NumberOfPeople: 0,
	})
	assert.Nil(t, b)
	assert.Contains(t, errs, "package_id")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "travel_date")
	assert.Contains(t, errs, "number_of_people")
}
