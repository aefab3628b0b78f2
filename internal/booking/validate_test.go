package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kohtao/scuba-reservation/internal/booking"
	"github.com/kohtao/scuba-reservation/internal/model"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, booking.IsValidEmail("john@example.com"))
	assert.True(t, booking.IsValidEmail("  john@example.com  "))
	assert.True(t, booking.IsValidEmail("a@b.c"))

	assert.False(t, booking.IsValidEmail(""))
	assert.False(t, booking.IsValidEmail("   "))
	assert.False(t, booking.IsValidEmail("john@example"))
	assert.False(t, booking.IsValidEmail("john example@b.co"))
	assert.False(t, booking.IsValidEmail("john@@example.com"))
	assert.False(t, booking.IsValidEmail("@example.com"))
}

func TestContactComplete(t *testing.T) {
	assert.True(t, booking.ContactComplete(model.DiverContact{Name: "John", CountryCode: "+66", PhoneNumber: "862341234"}))
	// The country code is never validated.
	assert.True(t, booking.ContactComplete(model.DiverContact{Name: "John", PhoneNumber: "862341234"}))

	assert.False(t, booking.ContactComplete(model.DiverContact{Name: "John", CountryCode: "+66"}))
	assert.False(t, booking.ContactComplete(model.DiverContact{CountryCode: "+66", PhoneNumber: "862341234"}))
	assert.False(t, booking.ContactComplete(model.DiverContact{Name: "  ", PhoneNumber: "  "}))
}

func completeDraft() booking.Draft {
	d := booking.NewDraft()
	d.UpdateContact(0, model.DiverContact{Name: "John Smith", CountryCode: "+66", PhoneNumber: "862341234"})
	d.CourseID = "try-scuba"
	d.Email = "john@example.com"
	return d
}

func TestValid_Success(t *testing.T) {
	d := completeDraft()

	assert.True(t, d.Valid())
	assert.Empty(t, d.Problems())
}

func TestValid_Fail_IncompleteSecondContact(t *testing.T) {
	d := completeDraft()
	d.SetDiverCount(2)

	assert.False(t, d.Valid())
	problems := d.Problems()
	if assert.Len(t, problems, 1) {
		assert.Contains(t, problems[0], "diver 2")
	}
}

func TestValid_Fail_BadEmail(t *testing.T) {
	d := completeDraft()
	d.Email = "john@example"

	assert.False(t, d.Valid())
	assert.Contains(t, d.Problems(), "a valid email is required")
}

func TestValid_Fail_NoCourseSelected(t *testing.T) {
	d := completeDraft()
	d.CourseID = "  "

	assert.False(t, d.Valid())
	assert.Contains(t, d.Problems(), "a course must be selected")
}

func TestValid_PickupRequiresLocationAndArea(t *testing.T) {
	d := completeDraft()
	d.NeedsPickup = true

	assert.False(t, d.Valid())
	problems := d.Problems()
	assert.Contains(t, problems, "pickup location is required")
	assert.Contains(t, problems, "pickup area is required")

	d.PickupLocation = "Sairee Hotel"
	d.PickupArea = "Sairee Beach"
	assert.True(t, d.Valid())

	// Without pickup the same empty fields are fine.
	d.NeedsPickup = false
	d.PickupLocation = ""
	d.PickupArea = ""
	assert.True(t, d.Valid())
}
