package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kohtao/scuba-reservation/internal/handler"
	"github.com/kohtao/scuba-reservation/internal/repository"
)

func newWizard(t *testing.T) *handler.WizardHandler {
	t.Helper()
	return handler.NewWizardHandler(repository.NewReservationRepo(), fixedClock, testCfg)
}

func TestListCourses_ReturnsFullCatalog(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/v1/booking/courses", "")

	assert.NoError(t, h.ListCourses(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Koh Tao Scuba Club", body["venue"])
	assert.Len(t, body["items"], 8)
}

func TestGetCourse_Fail_UnknownID(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/", "")
	c.SetPath("/v1/booking/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("night-dive")

	assert.NoError(t, h.GetCourse(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuote_Success(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/v1/booking/quote?courseId=try-scuba&divers=2&deposit=partial", "")

	assert.NoError(t, h.Quote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["selected"])
	assert.Equal(t, float64(3250), body["unitPrice"])
	assert.Equal(t, float64(6500), body["subtotal"])
	assert.Equal(t, float64(6500), body["total"])
	assert.Equal(t, float64(3250), body["amountToPay"])
}

func TestQuote_CouponTakesFlatDiscount(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/v1/booking/quote?courseId=open-water&divers=1&deposit=full&coupon=WELCOME", "")

	assert.NoError(t, h.Quote(c))

	body := decodeBody(t, rec)
	assert.Equal(t, float64(100), body["discount"])
	assert.Equal(t, float64(9400), body["total"])
	assert.Equal(t, float64(9400), body["amountToPay"])
}

func TestQuote_NoCourseIsNotAnError(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/v1/booking/quote?divers=3&coupon=WELCOME", "")

	assert.NoError(t, h.Quote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["selected"])
	assert.Equal(t, float64(0), body["subtotal"])
	assert.Equal(t, float64(0), body["discount"])
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, float64(0), body["amountToPay"])
}

func TestSummary_FallsBackToPlaceholderContact(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	c, rec := doJSON(e, http.MethodGet, "/v1/booking/summary?courseId=try-scuba&divers=2", "")

	assert.NoError(t, h.Summary(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Winter Kan", body["name"])
	assert.Equal(t, "086-234-1234", body["phone"])
	assert.Equal(t, "winter@food.com", body["email"])
	assert.Equal(t, float64(6500), body["total"])
	assert.NotEmpty(t, body["nextParams"])
}

func TestSubmit_Success(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	body := `{
		"divers": 2,
		"courseId": "try-scuba",
		"deposit": "partial",
		"payment": "qr",
		"email": "john@example.com",
		"request": "vegetarian lunch",
		"contacts": [
			{"name": "John Smith", "countryCode": "+66", "phoneNumber": "862341234"},
			{"name": "Jane Doe", "countryCode": "+66", "phoneNumber": "812345678"}
		]
	}`
	c, rec := doJSON(e, http.MethodPost, "/v1/booking", body)

	assert.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody(t, rec)["item"].(map[string]any)
	assert.Equal(t, float64(6500), item["totalPrice"])
	assert.Equal(t, float64(3250), item["paidAmount"])
	assert.Equal(t, "pending", item["status"])
	assert.Equal(t, "vegetarian lunch", item["specialRequests"])
	// No date in the body: the reservation lands on today.
	assert.Equal(t, "2026-03-14", item["date"])
	assert.Equal(t, "10:00", item["timeSlot"])

	stored, ok := h.Repo.Get(item["id"].(string))
	assert.True(t, ok)
	assert.Equal(t, "John Smith", stored.CustomerName)
}

func TestSubmit_LegacyRequestKeyWinsOverSpecialRequests(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	body := `{
		"divers": 1,
		"courseId": "refresh",
		"email": "john@example.com",
		"specialRequests": "late checkout",
		"request": "no onions",
		"contacts": [{"name": "John Smith", "countryCode": "+66", "phoneNumber": "862341234"}]
	}`
	c, rec := doJSON(e, http.MethodPost, "/v1/booking", body)

	assert.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody(t, rec)["item"].(map[string]any)
	assert.Equal(t, "no onions", item["specialRequests"])
}

func TestSubmit_UnknownDepositFallsBackToFull(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	body := `{
		"divers": 1,
		"courseId": "refresh",
		"deposit": "installments",
		"payment": "barter",
		"email": "john@example.com",
		"contacts": [{"name": "John Smith", "countryCode": "+66", "phoneNumber": "862341234"}]
	}`
	c, rec := doJSON(e, http.MethodPost, "/v1/booking", body)

	assert.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody(t, rec)["item"].(map[string]any)
	// The same fallback ParseParams applies: full deposit, not zero.
	assert.Equal(t, float64(1500), item["paidAmount"])
}

func TestSubmit_Fail_NothingPersistedOnInvalidDraft(t *testing.T) {
	h := newWizard(t)
	e := echo.New()
	body := `{
		"divers": 2,
		"courseId": "try-scuba",
		"email": "not-an-email",
		"contacts": [{"name": "John Smith", "countryCode": "+66", "phoneNumber": "862341234"}]
	}`
	c, rec := doJSON(e, http.MethodPost, "/v1/booking", body)

	assert.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	problems := decodeBody(t, rec)["problems"].([]any)
	assert.Len(t, problems, 2)
	assert.Empty(t, h.Repo.List())
}
