package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/handler/dto"
	hmocks "github.com/wanderlk/tripdesk/internal/handler/mocks"
	"github.com/wanderlk/tripdesk/internal/validate"
	"github.com/wanderlk/tripdesk/internal/wizard"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	intake    *hmocks.MockIntakeSvc
	status    *hmocks.MockStatusSvc
	activity  *hmocks.MockActivitySvc
	catalog   *hmocks.MockCatalogSvc
	inquiries *hmocks.MockInquiryLister
	bookings  *hmocks.MockBookingLister
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		intake:    hmocks.NewMockIntakeSvc(t),
		status:    hmocks.NewMockStatusSvc(t),
		activity:  hmocks.NewMockActivitySvc(t),
		catalog:   hmocks.NewMockCatalogSvc(t),
		inquiries: hmocks.NewMockInquiryLister(t),
		bookings:  hmocks.NewMockBookingLister(t),
	}

	machine := wizard.NewMachine(validate.New(), m.intake)
	h := NewHandler(machine, m.intake, m.status, m.activity, m.catalog, m.inquiries, m.bookings)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/wizard/advance", h.AdvanceWizard)
		api.POST("/inquiries", h.SubmitInquiry)
		api.POST("/packages/:id/bookings", h.SubmitBooking)
		api.GET("/options", h.ListOptions)

		admin := api.Group("/admin")
		{
			admin.GET("/options", h.ListAllOptions)
			admin.POST("/options", h.CreateOption)
			admin.PUT("/options/:id", h.UpdateOption)
			admin.GET("/inquiries", h.ListInquiries)
			admin.PATCH("/inquiries/:id/status", h.SetInquiryStatus)
			admin.PATCH("/inquiries/:id/notes", h.SetInquiryNotes)
			admin.GET("/bookings", h.ListBookings)
			admin.PATCH("/bookings/:id/status", h.SetBookingStatus)
			admin.GET("/activity", h.RecentActivity)
			admin.GET("/pending-counts", h.PendingCounts)
		}
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Wizard ---

func TestHandler_AdvanceWizard_ValidStep(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/wizard/advance", dto.WizardAdvanceRequest{
		CurrentStep: 0,
		Draft:       domain.DraftRequest{Regions: []string{"Hill Country"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WizardAdvanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.NextStep)
	assert.Equal(t, "travel_style", resp.StepName)
	assert.False(t, resp.Completed)
	assert.Empty(t, resp.Errors)
}

func TestHandler_AdvanceWizard_InvalidStepData(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/wizard/advance", dto.WizardAdvanceRequest{
		CurrentStep: 0,
		Draft:       domain.DraftRequest{},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WizardAdvanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.NextStep)
	assert.Contains(t, resp.Errors, "regions")
}

func TestHandler_AdvanceWizard_FinalStepCompletes(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/wizard/advance", dto.WizardAdvanceRequest{
		CurrentStep: int(wizard.LastStep),
		Draft: domain.DraftRequest{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WizardAdvanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
}

func TestHandler_AdvanceWizard_UnknownStep(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/wizard/advance", map[string]any{
		"current_step": 42,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Intake ---

func TestHandler_SubmitInquiry_Success(t *testing.T) {
	m, r := setupRouter(t)

	inquiry := &domain.CustomInquiry{
		ID:            "inq-1",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Destinations:  []string{"Hill Country"},
		Interests:     []string{"Hiking", "Travel Style: Adventure", "Accommodation: 4-Star Boutique"},
		BudgetRange:   "1500 - 2500 USD",
		ArrivalDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        domain.InquiryStatusPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	m.intake.EXPECT().SubmitCustomTrip(mock.Anything, mock.Anything).Return(inquiry, nil)

	w := doJSON(t, r, http.MethodPost, "/api/inquiries", domain.DraftRequest{
		Regions: []string{"Hill Country"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "inq-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Travel dates: 2025-03-01 to 2025-03-10", resp.Message)
}

func TestHandler_SubmitInquiry_FieldErrors(t *testing.T) {
	m, r := setupRouter(t)

	m.intake.EXPECT().SubmitCustomTrip(mock.Anything, mock.Anything).
		Return(nil, domain.FieldErrors{"email": "enter a valid email address"})

	w := doJSON(t, r, http.MethodPost, "/api/inquiries", domain.DraftRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.FieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "please correct the highlighted fields", resp.Error)
	assert.Contains(t, resp.Errors, "email")
}

func TestHandler_SubmitBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	total := int64(1350)
	booking := &domain.PackageBooking{
		ID:             "bk-1",
		PackageID:      "pkg-1",
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		TravelDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 3,
		TotalAmount:    &total,
		Status:         domain.BookingStatusPending,
	}
	m.intake.EXPECT().SubmitPackageBooking(mock.Anything, mock.MatchedBy(func(in *domain.BookingInput) bool {
		return in.PackageID == "pkg-1"
	})).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/packages/pkg-1/bookings", dto.BookingRequest{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		TravelDate:     "2025-06-15",
		NumberOfPeople: 3,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bk-1", resp.ID)
	require.NotNil(t, resp.TotalAmount)
	assert.Equal(t, int64(1350), *resp.TotalAmount)
}

func TestHandler_SubmitBooking_PackageNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.intake.EXPECT().SubmitPackageBooking(mock.Anything, mock.Anything).
		Return(nil, domain.ErrPackageNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/packages/missing/bookings", dto.BookingRequest{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		TravelDate:     "2025-06-15",
		NumberOfPeople: 3,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SubmitBooking_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	// binding rejects before the service is touched
	w := doJSON(t, r, http.MethodPost, "/api/packages/pkg-1/bookings", map[string]any{
		"name": "Jane Doe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Catalog ---

func TestHandler_ListOptions(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().ListOptions(mock.Anything, "region").Return([]*domain.Option{
		{ID: "o1", Category: domain.CategoryRegion, Label: "Hill Country", Active: true, SortOrder: 1},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/options?category=region", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Hill Country", resp[0].Label)
}

func TestHandler_ListOptions_UnknownCategory(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().ListOptions(mock.Anything, "cuisine").
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodGet, "/api/options?category=cuisine", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateOption(t *testing.T) {
	m, r := setupRouter(t)

	created := &domain.Option{ID: "o1", Category: domain.CategoryExperience, Label: "Whale Watching", Active: true}
	m.catalog.EXPECT().CreateOption(mock.Anything, mock.Anything).Return(created, nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/options", dto.CreateOptionRequest{
		Category: "experience",
		Label:    "Whale Watching",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "o1", resp.ID)
	assert.True(t, resp.Active)
}

func TestHandler_CreateOption_BadCategory(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/options", dto.CreateOptionRequest{
		Category: "cuisine",
		Label:    "Street Food",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateOption_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().UpdateOption(mock.Anything, "missing", mock.Anything).
		Return(nil, domain.ErrOptionNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/admin/options/missing", map[string]any{
		"active": false,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Staff request handling ---

func TestHandler_SetInquiryStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.status.EXPECT().SetInquiryStatus(mock.Anything, "inq-1", "contacted").Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/inquiries/inq-1/status", dto.UpdateStatusRequest{
		Status: "contacted",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetInquiryStatus_InvalidStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.status.EXPECT().SetInquiryStatus(mock.Anything, "inq-1", "confirmed").
		Return(domain.ErrInvalidStatus)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/inquiries/inq-1/status", dto.UpdateStatusRequest{
		Status: "confirmed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetInquiryStatus_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.status.EXPECT().SetInquiryStatus(mock.Anything, "missing", "reviewed").
		Return(domain.ErrInquiryNotFound)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/inquiries/missing/status", dto.UpdateStatusRequest{
		Status: "reviewed",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetInquiryNotes(t *testing.T) {
	m, r := setupRouter(t)

	m.status.EXPECT().SetInquiryAdminNotes(mock.Anything, "inq-1", "call back tuesday").Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/inquiries/inq-1/notes", dto.UpdateNotesRequest{
		Notes: "call back tuesday",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetBookingStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.status.EXPECT().SetBookingStatus(mock.Anything, "bk-1", "confirmed").Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/bookings/bk-1/status", dto.UpdateStatusRequest{
		Status: "confirmed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListInquiries_LimitQuery(t *testing.T) {
	m, r := setupRouter(t)

	m.inquiries.EXPECT().ListRecent(mock.Anything, 5).Return([]*domain.CustomInquiry{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/inquiries?limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_DefaultLimit(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().ListRecent(mock.Anything, 10).Return([]*domain.PackageBooking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Dashboard ---

func TestHandler_RecentActivity(t *testing.T) {
	m, r := setupRouter(t)

	items := []domain.ActivityItem{
		{Type: domain.ActivityBooking, ID: "bk-1", CustomerName: "John", Status: "pending", CreatedAt: time.Now()},
		{Type: domain.ActivityInquiry, ID: "inq-1", CustomerName: "Jane", Status: "pending", CreatedAt: time.Now().Add(-time.Hour)},
	}
	m.activity.EXPECT().RecentActivity(mock.Anything, 10).Return(items, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/activity", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "booking", resp[0].Type)
	assert.Equal(t, "inquiry", resp[1].Type)
}

func TestHandler_PendingCounts(t *testing.T) {
	m, r := setupRouter(t)

	m.activity.EXPECT().PendingCounts(mock.Anything).Return(&domain.PendingCounts{
		Inquiries: 3, Bookings: 4, Total: 7,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/pending-counts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PendingCountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Total)
}

func TestHandler_InternalErrorIsOpaque(t *testing.T) {
	m, r := setupRouter(t)

	m.activity.EXPECT().PendingCounts(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/admin/pending-counts", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "something went wrong, please try again", resp.Error)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
