// Package wizard implements the eight-step intake state machine. State is an
// explicit value rather than ambient session globals, so next/back/submit are
// unit-testable without any rendering layer, and the HTTP surface can run the
// same per-step rules statelessly.
package wizard

import (
	"context"
	"errors"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/validate"
)

type Step int

const (
	StepRegions Step = iota
	StepTravelStyle
	StepDates
	StepTravelers
	StepAccommodation
	StepExperiences
	StepBudget
	StepContact

	stepCount
)

var stepNames = [...]string{
	"regions",
	"travel_style",
	"dates",
	"travelers",
	"accommodation",
	"experiences",
	"budget",
	"contact",
}

func (s Step) String() string {
	if s < 0 || s >= stepCount {
		return "unknown"
	}
	return stepNames[s]
}

func (s Step) Valid() bool { return s >= 0 && s < stepCount }

// LastStep is the final data-collection step; Submit is only legal here.
const LastStep = StepContact

var ErrNotAtFinalStep = errors.New("submit is only allowed at the final step")

// State is the whole of a wizard session: the current step, the accumulated
// draft, and any errors from the last transition. The zero value via New is a
// fresh session at step 0.
type State struct {
	Step    Step                `json:"step"`
	Draft   domain.DraftRequest `json:"draft"`
	Errors  domain.FieldErrors  `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func New() State {
	return State{Step: StepRegions}
}

// Submitter persists a completed draft. Implemented by the intake service.
type Submitter interface {
	SubmitCustomTrip(ctx context.Context, draft *domain.DraftRequest) (*domain.CustomInquiry, error)
}

type Machine struct {
	validator *validate.Validator
	submitter Submitter
}

func NewMachine(v *validate.Validator, s Submitter) *Machine {
	return &Machine{validator: v, submitter: s}
}

// CheckStep runs only the rules owned by one step. Later-step fields are not
// yet populated, so validating anything beyond the current step would produce
// false failures when navigating back and forth.
func (m *Machine) CheckStep(step Step, draft *domain.DraftRequest) domain.FieldErrors {
	switch step {
	case StepRegions:
		return m.validator.Regions(draft)
	case StepTravelStyle:
		return m.validator.TravelStyle(draft)
	case StepDates:
		return m.validator.Dates(draft)
	case StepTravelers:
		return m.validator.Travelers(draft)
	case StepAccommodation:
		return m.validator.Accommodation(draft)
	case StepExperiences:
		return m.validator.Experiences(draft)
	case StepBudget:
		return m.validator.Budget(draft)
	case StepContact:
		return m.validator.Contact(draft)
	default:
		return domain.FieldErrors{}
	}
}

// Next validates the current step and advances on success, capped at the last
// step. On failure the state stays put carrying only that step's errors.
func (m *Machine) Next(st State) State {
	st.Errors = nil
	st.Message = ""

	if errs := m.CheckStep(st.Step, &st.Draft); len(errs) > 0 {
		st.Errors = errs
		return st
	}

	if st.Step < LastStep {
		st.Step++
	}
	return st
}

// Back always succeeds, never validates, and keeps data already entered for
// later steps.
func (m *Machine) Back(st State) State {
	st.Errors = nil
	st.Message = ""

	if st.Step > StepRegions {
		st.Step--
	}
	return st
}

// Submit runs the full normalization pipeline through the submitter. Success
// resets the machine to a fresh session and returns the stored inquiry.
// Validation failure keeps the session on the last step with the field errors
// visible; any other failure keeps the draft intact behind a generic retry
// message and surfaces the underlying error to the caller for logging.
func (m *Machine) Submit(ctx context.Context, st State) (State, *domain.CustomInquiry, error) {
	st.Errors = nil
	st.Message = ""

	if st.Step != LastStep {
		return st, nil, ErrNotAtFinalStep
	}

	inquiry, err := m.submitter.SubmitCustomTrip(ctx, &st.Draft)
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			st.Errors = fieldErrs
			st.Message = "please correct the highlighted fields"
			return st, nil, err
		}
		st.Message = "something went wrong, please try again"
		return st, nil, err
	}

	return New(), inquiry, nil
}
