package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kohtao/scuba-reservation/internal/booking"
	"github.com/kohtao/scuba-reservation/internal/catalog"
	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/config"
	"github.com/kohtao/scuba-reservation/internal/model"
	"github.com/kohtao/scuba-reservation/internal/pricing"
	"github.com/kohtao/scuba-reservation/internal/queue"
	"github.com/kohtao/scuba-reservation/internal/repository"
	queue_publisher "github.com/kohtao/scuba-reservation/internal/service"
)

// WizardHandler serves the customer-facing booking flow. The wizard steps
// carry their state in URL query parameters; every endpoint deserializes
// them through booking.ParseParams so missing or malformed values default
// instead of failing. Nothing touches the reservation store until Submit.
type WizardHandler struct {
	Repo  *repository.ReservationRepo
	Clock clock.Clock
	Cfg   config.Config
}

// NewWizardHandler constructs a WizardHandler. The repository and clock
// must be non-nil.
func NewWizardHandler(repo *repository.ReservationRepo, clk clock.Clock, cfg config.Config) *WizardHandler {
	if repo == nil || clk == nil {
		panic("nil dependency passed to NewWizardHandler")
	}
	return &WizardHandler{Repo: repo, Clock: clk, Cfg: cfg}
}

// ListCourses handles GET /v1/booking/courses. It returns the full static
// catalog for the package-selection step.
func (h *WizardHandler) ListCourses(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"venue": h.Cfg.VenueName,
		"items": catalog.Courses,
	})
}

// GetCourse handles GET /v1/booking/courses/:id. An unknown id responds
// 404; the wizard renders that as "no course selected" rather than an
// error page.
func (h *WizardHandler) GetCourse(c echo.Context) error {
	course, ok := catalog.FindCourse(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "course not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": course})
}

// Quote handles GET /v1/booking/quote. It computes the money amounts for
// the payment step from untrusted query parameters: divers, courseId,
// deposit and an optional coupon code. With no or an unknown course every
// amount is zero and selected=false, a no-selection state rather than an
// error.
func (h *WizardHandler) Quote(c echo.Context) error {
	d := booking.ParseParams(c.QueryParams())
	course, selected := catalog.FindCourse(d.CourseID)

	unitPrice := 0
	courseName := ""
	subtotal := 0
	if selected {
		unitPrice = course.PriceTHB
		courseName = course.Name
		subtotal = pricing.ComputeTotal(course, d.DiverCount)
	}
	discount := pricing.CouponDiscount(c.QueryParam("coupon"))
	if !selected {
		discount = 0
	}
	total := subtotal - discount
	amountToPay := pricing.ComputeDeposit(total, d.Deposit)

	return c.JSON(http.StatusOK, echo.Map{
		"selected":    selected,
		"courseId":    d.CourseID,
		"courseName":  courseName,
		"divers":      d.DiverCount,
		"unitPrice":   unitPrice,
		"subtotal":    subtotal,
		"discount":    discount,
		"total":       total,
		"deposit":     d.Deposit,
		"amountToPay": amountToPay,
	})
}

// Summary handles GET /v1/booking/summary. It parses the complete wizard
// parameter set into a draft and echoes the confirmation summary. The
// total is recomputed from the catalog when the course is known; the
// passed-through total is only trusted as a fallback.
func (h *WizardHandler) Summary(c echo.Context) error {
	d := booking.ParseParams(c.QueryParams())
	course, selected := catalog.FindCourse(d.CourseID)

	total := d.Total
	courseName := ""
	if selected {
		total = pricing.ComputeTotal(course, d.DiverCount) - d.Discount
		courseName = course.Name
	}

	return c.JSON(http.StatusOK, echo.Map{
		"venue":      h.Cfg.VenueName,
		"location":   h.Cfg.VenueLocation,
		"divers":     d.DiverCount,
		"courseId":   d.CourseID,
		"courseName": courseName,
		"deposit":    d.Deposit,
		"payment":    d.Payment,
		"amount":     d.Amount,
		"discount":   d.Discount,
		"total":      total,
		"remaining":  pricing.Remaining(total, d.Amount),
		"name":       d.Name,
		"phone":      d.Phone,
		"email":      d.Email,
		"nextParams": d.Params().Encode(),
	})
}

// submitRequest is the JSON body accepted by Submit. Contacts follow the
// diver-count reconciliation rules; the legacy "request" key is accepted
// as an alias for specialRequests.
type submitRequest struct {
	Divers          int                  `json:"divers"`
	CourseID        string               `json:"courseId"`
	Deposit         string               `json:"deposit"`
	Payment         string               `json:"payment"`
	Coupon          string               `json:"coupon"`
	Date            string               `json:"date"`
	TimeSlot        string               `json:"timeSlot"`
	Email           string               `json:"email"`
	Note            string               `json:"note"`
	SpecialRequests string               `json:"specialRequests"`
	Request         string               `json:"request"`
	NeedsPickup     bool                 `json:"needsPickup"`
	PickupLocation  string               `json:"pickupLocation"`
	PickupArea      string               `json:"pickupArea"`
	Contacts        []model.DiverContact `json:"contacts"`
}

// Submit handles POST /v1/booking. It assembles a draft from the request
// body, refuses invalid drafts with 422 (nothing is partially persisted),
// stores the reservation and publishes a reservation.created event.
func (h *WizardHandler) Submit(c echo.Context) error {
	var body submitRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	d := booking.NewDraft()
	d.SetDiverCount(body.Divers)
	d.SetContacts(body.Contacts)
	d.CourseID = body.CourseID
	// Unknown deposit/payment strings fall back to the draft defaults, the
	// same degradation ParseParams applies to query parameters.
	if booking.ValidDeposit(body.Deposit) {
		d.Deposit = body.Deposit
	}
	if booking.ValidPayment(body.Payment) {
		d.Payment = body.Payment
	}
	d.Discount = pricing.CouponDiscount(body.Coupon)
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
	res.SpecialRequests = canonicalRequest(body.Request, body.SpecialRequests)

	if err := h.Repo.Add(res); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation id already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store reservation"})
	}

	publishCreated(res, "wizard")

	return c.JSON(http.StatusCreated, echo.Map{"item": res})
}

// canonicalRequest folds the legacy "request" field into the canonical
// specialRequests value; the legacy key wins when both are present.
func canonicalRequest(request, specialRequests string) string {
	if request != "" {
		return request
	}
	return specialRequests
}

// publishCreated emits the reservation.created event without blocking the
// request; publish failures are logged by the publisher and ignored here.
func publishCreated(res model.Reservation, source string) {
	ev := queue.ReservationCreatedEvent{
		ReservationID: res.ID,
		Source:        source,
		CustomerName:  res.CustomerName,
		Phone:         res.Phone,
		Date:          res.Date,
		TimeSlot:      res.TimeSlot,
		DiverCount:    res.DiverCount,
		CourseID:      res.CourseID,
		CourseName:    res.CourseName,
		TotalPrice:    res.TotalPrice,
		PaidAmount:    res.PaidAmount,
		CreatedAt:     res.CreatedAt,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationCreated(ctx, ev)
	}()
}
