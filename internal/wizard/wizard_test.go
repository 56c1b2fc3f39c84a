package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/validate"
	"github.com/wanderlk/tripdesk/internal/wizard/mocks"
)

func completeDraft() domain.DraftRequest {
	return domain.DraftRequest{
		Regions:       []string{"Hill Country"},
		TravelStyle:   "Adventure",
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-10",
		Adults:        2,
		Accommodation: "4-Star Boutique",
		Experiences:   []string{"Hiking"},
		BudgetMin:     1500,
		BudgetMax:     2500,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
	}
}

func TestMachine_Next_AdvancesOnValidStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := New()
	st.Draft.Regions = []string{"South Coast"}

	st = m.Next(st)

	assert.Equal(t, StepTravelStyle, st.Step)
	assert.Empty(t, st.Errors)
}

func TestMachine_Next_StaysOnInvalidStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := m.Next(New())

	assert.Equal(t, StepRegions, st.Step)
	assert.Contains(t, st.Errors, "regions")
}

func TestMachine_Next_ValidatesOnlyCurrentStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	// nothing beyond regions is filled in; later-step fields must not fail
	st := New()
	st.Draft.Regions = []string{"East Coast"}

	st = m.Next(st)

	assert.Equal(t, StepTravelStyle, st.Step)
	assert.Empty(t, st.Errors)
}

func TestMachine_Next_CapsAtLastStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := State{Step: LastStep, Draft: completeDraft()}
	st = m.Next(st)

	assert.Equal(t, LastStep, st.Step)
}

func TestMachine_Back_AlwaysSucceeds(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	// invalid draft data must not block going back
	st := State{Step: StepDates, Draft: domain.DraftRequest{StartDate: "garbage"}}
	st = m.Back(st)

	assert.Equal(t, StepTravelStyle, st.Step)
	assert.Empty(t, st.Errors)
}

func TestMachine_Back_FloorsAtFirstStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := m.Back(New())

	assert.Equal(t, StepRegions, st.Step)
}

func TestMachine_Back_PreservesLaterStepData(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := State{Step: StepBudget, Draft: completeDraft()}
	st = m.Back(st)

	assert.Equal(t, StepExperiences, st.Step)
	assert.Equal(t, int64(1500), st.Draft.BudgetMin)
	assert.Equal(t, "jane@example.com", st.Draft.Email)
}

func TestMachine_FullWalkthrough(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := New()
	st.Draft = completeDraft()

	for step := StepRegions; step < LastStep; step++ {
		require.Equal(t, step, st.Step)
		st = m.Next(st)
		require.Empty(t, st.Errors, "step %s should validate", step)
	}

	assert.Equal(t, LastStep, st.Step)
}

func TestMachine_Submit_Success(t *testing.T) {
	submitter := mocks.NewMockSubmitter(t)
	m := NewMachine(validate.New(), submitter)

	stored := &domain.CustomInquiry{ID: "inq-1", Status: domain.InquiryStatusPending}
	submitter.EXPECT().SubmitCustomTrip(mock.Anything, mock.Anything).Return(stored, nil)

	st := State{Step: LastStep, Draft: completeDraft()}
	next, inquiry, err := m.Submit(context.Background(), st)

	require.NoError(t, err)
	assert.Equal(t, stored, inquiry)

	// machine resets to a fresh session
	assert.Equal(t, StepRegions, next.Step)
	assert.Empty(t, next.Draft.Regions)
	assert.Empty(t, next.Errors)
}

func TestMachine_Submit_OnlyAtFinalStep(t *testing.T) {
	m := NewMachine(validate.New(), mocks.NewMockSubmitter(t))

	st := State{Step: StepBudget, Draft: completeDraft()}
	_, inquiry, err := m.Submit(context.Background(), st)

	assert.Nil(t, inquiry)
	assert.ErrorIs(t, err, ErrNotAtFinalStep)
}

func TestMachine_Submit_ValidationFailureKeepsDraft(t *testing.T) {
	submitter := mocks.NewMockSubmitter(t)
	m := NewMachine(validate.New(), submitter)

	fieldErrs := domain.FieldErrors{"email": "enter a valid email address"}
	submitter.EXPECT().SubmitCustomTrip(mock.Anything, mock.Anything).Return(nil, fieldErrs)

	draft := completeDraft()
	draft.Email = "broken"

	next, inquiry, err := m.Submit(context.Background(), State{Step: LastStep, Draft: draft})

	assert.Nil(t, inquiry)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// session stays on the last step with the draft intact for correction
	assert.Equal(t, LastStep, next.Step)
	assert.Equal(t, "broken", next.Draft.Email)
	assert.Contains(t, next.Errors, "email")
	assert.NotEmpty(t, next.Message)
}

func TestMachine_Submit_PersistenceFailureKeepsDraft(t *testing.T) {
	submitter := mocks.NewMockSubmitter(t)
	m := NewMachine(validate.New(), submitter)

	submitter.EXPECT().SubmitCustomTrip(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	next, inquiry, err := m.Submit(context.Background(), State{Step: LastStep, Draft: completeDraft()})

	assert.Nil(t, inquiry)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, LastStep, next.Step)
	assert.Empty(t, next.Errors)
	assert.Equal(t, "something went wrong, please try again", next.Message)
	assert.Equal(t, "jane@example.com", next.Draft.Email)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "regions", StepRegions.String())
	assert.Equal(t, "contact", StepContact.String())
	assert.Equal(t, "unknown", Step(99).String())
}
