package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/kohtao/scuba-reservation/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the booking wizard
// or the POS dashboard.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the customer-facing booking wizard under the
// /v1/booking prefix.  The wizard carries its step state in query
// parameters, so every GET here is safe to cache; the provided cache
// middleware is applied to the whole group and skips non-cacheable
// methods by itself.
func RegisterBooking(e *echo.Echo, w *handler.WizardHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/booking")
	if cache != nil {
		g.Use(cache)
	}
	// The static course catalog for the package-selection step.
	g.GET("/courses", w.ListCourses)
	// A single course by id; the wizard renders 404 as "no selection".
	g.GET("/courses/:id", w.GetCourse)
	// The payment-step money breakdown computed from query parameters.
	g.GET("/quote", w.Quote)
	// The confirmation summary for the final wizard step.
	g.GET("/summary", w.Summary)
	// Submitting the wizard persists a reservation.  This is the only
	// wizard route that writes, so it is registered outside any caching
	// concern and validates the complete draft before storing.
	e.POST("/v1/booking", w.Submit)
}

// RegisterPOS registers the staff dashboard endpoints under the /v1/pos
// prefix.  Reads (day listings, stats, upcoming panel, detail view) go
// through the cache middleware; mutations bypass it because only GET is a
// cacheable method.
func RegisterPOS(e *echo.Echo, p *handler.POSHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/pos")
	if cache != nil {
		g.Use(cache)
	}
	// List the reservations of one calendar day (defaults to today).
	g.GET("/reservations", p.ListByDate)
	// Calendar badge numbers: total and needs-payment counts for a day.
	g.GET("/reservations/stats", p.Stats)
	// The today/tomorrow upcoming panel.
	g.GET("/reservations/upcoming", p.Upcoming)
	// A single reservation for the detail modal.
	g.GET("/reservations/:id", p.Get)
	// Staff-issued reservation creation from the new-reservation modal.
	g.POST("/reservations", p.Create)
	// Wholesale edit from the detail modal; id and createdAt are immutable.
	g.PUT("/reservations/:id", p.Update)
	// Record an additional payment against a reservation.
	g.POST("/reservations/:id/payments", p.AddPayment)
	// Permanently delete a reservation.  Deleting an absent id still
	// answers 204.
	g.DELETE("/reservations/:id", p.Delete)
}
