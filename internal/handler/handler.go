package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/handler/dto"
	"github.com/wanderlk/tripdesk/internal/wizard"
	"github.com/wb-go/wbf/ginext"
)

type IntakeSvc interface {
	SubmitCustomTrip(ctx context.Context, draft *domain.DraftRequest) (*domain.CustomInquiry, error)
	SubmitPackageBooking(ctx context.Context, input *domain.BookingInput) (*domain.PackageBooking, error)
}

type StatusSvc interface {
	SetInquiryStatus(ctx context.Context, id, status string) error
	SetBookingStatus(ctx context.Context, id, status string) error
	SetInquiryAdminNotes(ctx context.Context, id, notes string) error
}

type ActivitySvc interface {
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error)
	PendingCounts(ctx context.Context) (*domain.PendingCounts, error)
}

type CatalogSvc interface {
	ListOptions(ctx context.Context, category string) ([]*domain.Option, error)
	ListAllOptions(ctx context.Context) ([]*domain.Option, error)
	CreateOption(ctx context.Context, input domain.CreateOptionInput) (*domain.Option, error)
	UpdateOption(ctx context.Context, id string, input domain.UpdateOptionInput) (*domain.Option, error)
}

type InquiryLister interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.CustomInquiry, error)
}

type BookingLister interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.PackageBooking, error)
}

type Handler struct {
	machine         *wizard.Machine
	intakeService   IntakeSvc
	statusService   StatusSvc
	activityService ActivitySvc
	catalogService  CatalogSvc
	inquiries       InquiryLister
	bookings        BookingLister
}

func NewHandler(
	machine *wizard.Machine,
	intakeService IntakeSvc,
	statusService StatusSvc,
	activityService ActivitySvc,
	catalogService CatalogSvc,
	inquiries InquiryLister,
	bookings BookingLister,
) *Handler {
	return &Handler{
		machine:         machine,
		intakeService:   intakeService,
		statusService:   statusService,
		activityService: activityService,
		catalogService:  catalogService,
		inquiries:       inquiries,
		bookings:        bookings,
	}
}

// Wizard

// AdvanceWizard runs one next-transition statelessly: the client posts its
// current step and draft, the server validates only that step's fields.
func (h *Handler) AdvanceWizard(c *ginext.Context) {
	var req dto.WizardAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	step := wizard.Step(req.CurrentStep)
	if !step.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid wizard step"})
		return
	}

	next := h.machine.Next(wizard.State{Step: step, Draft: req.Draft})

	c.JSON(http.StatusOK, dto.WizardAdvanceResponse{
		NextStep:  int(next.Step),
		StepName:  next.Step.String(),
		Completed: len(next.Errors) == 0 && step == wizard.LastStep,
		Errors:    next.Errors,
	})
}

// Intake

func (h *Handler) SubmitInquiry(c *ginext.Context) {
	var draft domain.DraftRequest
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	inquiry, err := h.intakeService.SubmitCustomTrip(c.Request.Context(), &draft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInquiryResponse(inquiry))
}

func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.BookingInput{
		PackageID:      c.Param("id"),
		Name:           req.Name,
		Email:          req.Email,
		CountryCode:    req.CountryCode,
		Phone:          req.Phone,
		TravelDate:     req.TravelDate,
		NumberOfPeople: req.NumberOfPeople,
	}

	booking, err := h.intakeService.SubmitPackageBooking(c.Request.Context(), &input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Catalog

func (h *Handler) ListOptions(c *ginext.Context) {
	options, err := h.catalogService.ListOptions(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		resp = append(resp, dto.ToOptionResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAllOptions(c *ginext.Context) {
	options, err := h.catalogService.ListAllOptions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		resp = append(resp, dto.ToOptionResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateOption(c *ginext.Context) {
	var req dto.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := domain.ParseOptionCategory(req.Category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	option, err := h.catalogService.CreateOption(c.Request.Context(), domain.CreateOptionInput{
		Category:    category,
		Label:       req.Label,
		Description: req.Description,
		Metadata:    req.Metadata,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOptionResponse(option))
}

func (h *Handler) UpdateOption(c *ginext.Context) {
	var req dto.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	option, err := h.catalogService.UpdateOption(c.Request.Context(), c.Param("id"), domain.UpdateOptionInput{
		Label:       req.Label,
		Description: req.Description,
		Metadata:    req.Metadata,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOptionResponse(option))
}

// Staff request handling

func (h *Handler) SetInquiryStatus(c *ginext.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.statusService.SetInquiryStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) SetInquiryNotes(c *ginext.Context) {
	var req dto.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.statusService.SetInquiryAdminNotes(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"notes": req.Notes})
}

func (h *Handler) SetBookingStatus(c *ginext.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.statusService.SetBookingStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) ListInquiries(c *ginext.Context) {
	inquiries, err := h.inquiries.ListRecent(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		resp = append(resp, dto.ToInquiryResponse(inq))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookings.ListRecent(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Dashboard

func (h *Handler) RecentActivity(c *ginext.Context) {
	items, err := h.activityService.RecentActivity(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToActivityResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PendingCounts(c *ginext.Context) {
	counts, err := h.activityService.PendingCounts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PendingCountsResponse{
		Inquiries: counts.Inquiries,
		Bookings:  counts.Bookings,
		Total:     counts.Total,
	})
}

func queryLimit(c *ginext.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		return 10
	}
	return limit
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, dto.FieldErrorResponse{
			Error:  "please correct the highlighted fields",
			Errors: fieldErrs,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInquiryNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		// Detail stays in the logs via the error set on the context.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "something went wrong, please try again"})
	}
}
