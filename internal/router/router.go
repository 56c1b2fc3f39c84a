package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	AdvanceWizard(c *ginext.Context)
	SubmitInquiry(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	ListOptions(c *ginext.Context)
	ListAllOptions(c *ginext.Context)
	CreateOption(c *ginext.Context)
	UpdateOption(c *ginext.Context)
	SetInquiryStatus(c *ginext.Context)
	SetInquiryNotes(c *ginext.Context)
	SetBookingStatus(c *ginext.Context)
	ListInquiries(c *ginext.Context)
	ListBookings(c *ginext.Context)
	RecentActivity(c *ginext.Context)
	PendingCounts(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Customer intake
		api.POST("/wizard/advance", h.AdvanceWizard)
		api.POST("/inquiries", h.SubmitInquiry)
		api.POST("/packages/:id/bookings", h.SubmitBooking)
		api.GET("/options", h.ListOptions)

		// Staff
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

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
