package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kohtao/scuba-reservation/internal/booking"
	"github.com/kohtao/scuba-reservation/internal/catalog"
	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/config"
	"github.com/kohtao/scuba-reservation/internal/model"
	"github.com/kohtao/scuba-reservation/internal/pricing"
	"github.com/kohtao/scuba-reservation/internal/repository"
)

// POSHandler serves the staff dashboard: calendar-driven day listings,
// the upcoming-reservations panel, the new-reservation modal and the
// detail/edit/payment modal. All reads and writes go through the shared
// reservation repository; the handler never keeps its own copy.
type POSHandler struct {
	Repo  *repository.ReservationRepo
	Clock clock.Clock
	Cfg   config.Config
}

// NewPOSHandler constructs a POSHandler. The repository and clock must be
// non-nil.
func NewPOSHandler(repo *repository.ReservationRepo, clk clock.Clock, cfg config.Config) *POSHandler {
	if repo == nil || clk == nil {
		panic("nil dependency passed to NewPOSHandler")
	}
	return &POSHandler{Repo: repo, Clock: clk, Cfg: cfg}
}

// ListByDate handles GET /v1/pos/reservations?date=YYYY-MM-DD. A missing
// date defaults to today. The result keeps store insertion order; the
// dashboard does not rely on any sort.
func (h *POSHandler) ListByDate(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = clock.Today(h.Clock)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":  date,
		"items": h.Repo.ByDate(date),
	})
}

// Stats handles GET /v1/pos/reservations/stats?date=. It returns the
// calendar badge numbers for one day: total reservations and how many
// still need payment.
func (h *POSHandler) Stats(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = clock.Today(h.Clock)
	}
	stats := h.Repo.StatsForDate(date)
	return c.JSON(http.StatusOK, echo.Map{
		"date":        date,
		"total":       stats.Total,
		"needPayment": stats.NeedPayment,
	})
}

// Upcoming handles GET /v1/pos/reservations/upcoming?day=today|tomorrow.
// Any other day value is rejected. The date is resolved once per request
// from the injected clock.
func (h *POSHandler) Upcoming(c echo.Context) error {
	day := c.QueryParam("day")
	if day == "" {
		day = "today"
	}
	if day != "today" && day != "tomorrow" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "day must be today or tomorrow"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"day":   day,
		"items": h.Repo.Upcoming(h.Clock, day),
	})
}

// Get handles GET /v1/pos/reservations/:id.
func (h *POSHandler) Get(c echo.Context) error {
	res, ok := h.Repo.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res})
}

// createRequest is the JSON body of the POS new-reservation modal. The
// deposit option drives the initial paid amount: "none" records zero,
// otherwise an explicit paidAmount wins over the computed deposit.
type createRequest struct {
	Date            string               `json:"date"`
	TimeSlot        string               `json:"timeSlot"`
	SessionID       string               `json:"sessionId"`
	CourseID        string               `json:"courseId"`
	DiverCount      int                  `json:"diverCount"`
	Email           string               `json:"email"`
	Note            string               `json:"note"`
	SpecialRequests string               `json:"specialRequests"`
	Request         string               `json:"request"`
	NeedsPickup     bool                 `json:"needsPickup"`
	PickupLocation  string               `json:"pickupLocation"`
	PickupArea      string               `json:"pickupArea"`
	DepositOption   string               `json:"depositOption"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaidAmount      *int                 `json:"paidAmount"`
	Contacts        []model.DiverContact `json:"contacts"`
}

// Create handles POST /v1/pos/reservations, the staff-issued entry point.
// Validation mirrors the wizard's: an incomplete form is refused with 422
// and nothing is persisted.
func (h *POSHandler) Create(c echo.Context) error {
	var body createRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	d := booking.NewDraft()
	d.SetDiverCount(body.DiverCount)
	d.SetContacts(body.Contacts)
	d.CourseID = body.CourseID
	// Unknown deposit/payment strings fall back to the draft defaults, the
	// same degradation ParseParams applies to query parameters.
	if booking.ValidDeposit(body.DepositOption) {
		d.Deposit = body.DepositOption
	}
	if booking.ValidPayment(body.PaymentMethod) {
		d.Payment = body.PaymentMethod
	}
	d.Date = body.Date
	d.TimeSlot = body.TimeSlot
	d.Email = body.Email
	d.Note = body.Note
	d.NeedsPickup = body.NeedsPickup
	d.PickupLocation = body.PickupLocation
	d.PickupArea = body.PickupArea

	if problems := d.Problems(); len(problems) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":    "reservation form is incomplete",
			"problems": problems,
		})
	}

	res := d.ToReservation(h.Clock)
	if res.TimeSlot == "" {
		res.TimeSlot = h.Cfg.DefaultTimeSlot
	}
	res.SessionID = body.SessionID
	res.SpecialRequests = canonicalRequest(body.Request, body.SpecialRequests)

	// Staff may override the recorded deposit; "none" always records zero.
	if d.Deposit == pricing.DepositNone {
		res.PaidAmount = 0
	} else if body.PaidAmount != nil {
		res.PaidAmount = *body.PaidAmount
	}

	if err := h.Repo.Add(res); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation id already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store reservation"})
	}

	publishCreated(res, "pos")

	return c.JSON(http.StatusCreated, echo.Map{"item": res})
}

// updateRequest is a wholesale replacement body for PUT. The id and
// createdAt of the stored record are immutable and ignored if supplied.
type updateRequest struct {
	CustomerName    string               `json:"customerName"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	Date            string               `json:"date"`
	TimeSlot        string               `json:"timeSlot"`
	SessionID       string               `json:"sessionId"`
	DiverCount      int                  `json:"diverCount"`
	CourseID        string               `json:"courseId"`
	CourseName      string               `json:"courseName"`
	TotalPrice      int                  `json:"totalPrice"`
	SpecialRequests string               `json:"specialRequests"`
	Request         string               `json:"request"`
	Note            string               `json:"note"`
	NeedsPickup     bool                 `json:"needsPickup"`
	PickupLocation  string               `json:"pickupLocation"`
	PickupArea      string               `json:"pickupArea"`
	PaidAmount      int                  `json:"paidAmount"`
	Divers          []string             `json:"divers"`
	DiverContacts   []model.DiverContact `json:"diverContacts"`
	Status          string               `json:"status"`
}

// Update handles PUT /v1/pos/reservations/:id. The store replaces the
// record wholesale, so the handler assembles the complete updated object
// from the body and the immutable fields of the existing record. Unknown
// ids respond 404.
func (h *POSHandler) Update(c echo.Context) error {
	id := c.Param("id")
	existing, ok := h.Repo.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}

	var body updateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.DiverCount < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "diverCount must be at least 1"})
	}
	// When the diver lists are populated they must line up with diverCount;
	// the other write paths guarantee this through draft reconciliation.
	if len(body.Divers) > 0 && len(body.Divers) != body.DiverCount {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "divers must list exactly diverCount names"})
	}
	if len(body.DiverContacts) > 0 && len(body.DiverContacts) != body.DiverCount {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "diverContacts must list exactly diverCount contacts"})
	}
	status := body.Status
	if status == "" {
		status = existing.Status
	}
	if !validStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	res := model.Reservation{
		ID:              existing.ID,
		CustomerName:    body.CustomerName,
		Phone:           body.Phone,
		Email:           strings.TrimSpace(body.Email),
		Date:            body.Date,
		TimeSlot:        body.TimeSlot,
		SessionID:       body.SessionID,
		DiverCount:      body.DiverCount,
		CourseID:        body.CourseID,
		CourseName:      body.CourseName,
		TotalPrice:      body.TotalPrice,
		SpecialRequests: canonicalRequest(body.Request, body.SpecialRequests),
		Note:            body.Note,
		PaidAmount:      body.PaidAmount,
		Divers:          body.Divers,
		DiverContacts:   body.DiverContacts,
		Status:          status,
		CreatedAt:       existing.CreatedAt,
	}
	if body.NeedsPickup {
		res.NeedsPickup = true
		res.PickupLocation = body.PickupLocation
		res.PickupArea = body.PickupArea
	}
	// The course name/total snapshot is refreshed only when staff change
	// the course; otherwise the original booking-time snapshot stands.
	if body.CourseID != existing.CourseID {
		if course, found := catalog.FindCourse(body.CourseID); found {
			res.CourseName = course.Name
			res.TotalPrice = pricing.ComputeTotal(course, res.DiverCount)
		}
	}

	if !h.Repo.Update(id, res) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res})
}

// paymentRequest is the body of the add-payment action on the detail
// modal.
type paymentRequest struct {
	Amount int `json:"amount"`
}

// AddPayment handles POST /v1/pos/reservations/:id/payments. The amount
// is added to the recorded paid amount in a single store mutation; paying
// past the total is allowed and simply drives the remaining balance
// negative.
func (h *POSHandler) AddPayment(c echo.Context) error {
	var body paymentRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	res, ok := h.Repo.AddPayment(c.Param("id"), body.Amount)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":         res,
		"remaining":    pricing.Remaining(res.TotalPrice, res.PaidAmount),
		"needsPayment": pricing.NeedsPayment(res.TotalPrice, res.PaidAmount),
	})
}

// Delete handles DELETE /v1/pos/reservations/:id. Deletion is permanent
// and lenient: removing an id that is not present leaves the store
// unchanged and still answers 204.
func (h *POSHandler) Delete(c echo.Context) error {
	h.Repo.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func validStatus(s string) bool {
	switch s {
	case model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn, model.StatusCompleted, model.StatusCancelled:
		return true
	}
	return false
}
