// Package booking models the draft reservation accumulated across the
// wizard steps. The draft is the explicit, serializable in-progress state;
// URL query parameters are merely its serialization format at page
// boundaries, and every field is defaulted when deserializing because the
// parameters are untrusted and possibly missing.
package booking

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kohtao/scuba-reservation/internal/catalog"
	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/model"
	"github.com/kohtao/scuba-reservation/internal/pricing"
)

// Payment methods offered on the payment step.
const (
	PaymentCard = "card"
	PaymentQR   = "qr"
	PaymentCash = "cash"
)

// DefaultCountryCode is the dialing code new contact placeholders start
// with.
const DefaultCountryCode = "+66"

// ValidDeposit reports whether s names one of the deposit options. The
// empty string is not valid; callers keep their current option instead.
func ValidDeposit(s string) bool {
	return s == pricing.DepositFull || s == pricing.DepositPartial || s == pricing.DepositNone
}

// ValidPayment reports whether s names one of the payment methods.
func ValidPayment(s string) bool {
	return s == PaymentCard || s == PaymentQR || s == PaymentCash
}

// Placeholder contact info used when the wizard reaches the payment or
// summary step without name/phone/email parameters.
const (
	placeholderName  = "Winter Kan"
	placeholderPhone = "086-234-1234"
	placeholderEmail = "winter@food.com"
)

// Draft is a not-yet-persisted booking being assembled step by step. It
// never touches the reservation store until submission.
type Draft struct {
	DiverCount int
	CourseID   string
	Deposit    string
	Payment    string
	Amount     int
	Discount   int
	Total      int

	Name  string
	Phone string
	Email string

	Date           string
	TimeSlot       string
	Note           string
	NeedsPickup    bool
	PickupLocation string
	PickupArea     string

	Contacts []model.DiverContact
}

// NewDraft returns a draft for a single diver with one empty contact
// placeholder, full deposit and card payment preselected.
func NewDraft() Draft {
	d := Draft{
		DiverCount: 1,
		Deposit:    pricing.DepositFull,
		Payment:    PaymentCard,
	}
	d.reconcileContacts()
	return d
}

// ParseParams deserializes a draft from wizard query parameters. Missing
// or invalid numeric parameters default to 1 (diver count) or 0 (money
// amounts); missing contact strings fall back to the fixed placeholder
// contact. Unknown deposit and payment values fall back to the defaults.
func ParseParams(q url.Values) Draft {
	d := NewDraft()
	d.SetDiverCount(intParam(q, "divers", 1))
	d.CourseID = q.Get("courseId")
	if dep := q.Get("deposit"); ValidDeposit(dep) {
		d.Deposit = dep
	}
	if pay := q.Get("payment"); ValidPayment(pay) {
		d.Payment = pay
	}
	d.Amount = intParam(q, "amount", 0)
	d.Discount = intParam(q, "discount", 0)
	d.Total = intParam(q, "total", 0)
	d.Name = stringParam(q, "name", placeholderName)
	d.Phone = stringParam(q, "phone", placeholderPhone)
	d.Email = stringParam(q, "email", placeholderEmail)
	return d
}

// Params serializes the draft back into the wizard's query parameter set
// for the next step.
func (d *Draft) Params() url.Values {
	q := url.Values{}
	q.Set("divers", strconv.Itoa(d.DiverCount))
	q.Set("courseId", d.CourseID)
	q.Set("deposit", d.Deposit)
	q.Set("payment", d.Payment)
	q.Set("amount", strconv.Itoa(d.Amount))
	q.Set("discount", strconv.Itoa(d.Discount))
	q.Set("total", strconv.Itoa(d.Total))
	q.Set("name", d.Name)
	q.Set("phone", d.Phone)
	q.Set("email", d.Email)
	return q
}

// SetDiverCount changes the diver count, clamping to a minimum of one, and
// reconciles the contact list so len(Contacts) == DiverCount always holds:
// growing appends empty placeholders, shrinking truncates from the end and
// discards whatever was entered there.
func (d *Draft) SetDiverCount(n int) {
	if n < 1 {
		n = 1
	}
	d.DiverCount = n
	d.reconcileContacts()
}

// SetContacts replaces the contact list wholesale and re-reconciles it
// against the current diver count.
func (d *Draft) SetContacts(contacts []model.DiverContact) {
	d.Contacts = append([]model.DiverContact(nil), contacts...)
	d.reconcileContacts()
}

// UpdateContact overwrites the contact at index i. Out-of-range indexes
// are ignored. Editing index 0 also refreshes the draft's top-level
// customer name and formatted phone, since the first contact is the
// primary/billing contact.
func (d *Draft) UpdateContact(i int, contact model.DiverContact) {
	if i < 0 || i >= len(d.Contacts) {
		return
	}
	d.Contacts[i] = contact
	d.mirrorPrimary()
}

func (d *Draft) reconcileContacts() {
	for len(d.Contacts) < d.DiverCount {
		d.Contacts = append(d.Contacts, model.DiverContact{CountryCode: DefaultCountryCode})
	}
	if len(d.Contacts) > d.DiverCount {
		d.Contacts = d.Contacts[:d.DiverCount]
	}
	d.mirrorPrimary()
}

// mirrorPrimary copies the first contact's name and formatted phone into
// the denormalized top-level fields. Drafts with an empty primary keep
// whatever name/phone they already carried.
func (d *Draft) mirrorPrimary() {
	if len(d.Contacts) == 0 {
		return
	}
	primary := d.Contacts[0]
	if strings.TrimSpace(primary.Name) != "" {
		d.Name = strings.TrimSpace(primary.Name)
	}
	if strings.TrimSpace(primary.PhoneNumber) != "" {
		d.Phone = FormatPhone(primary.CountryCode, primary.PhoneNumber)
	}
}

// FormatPhone renders an international phone as the country code followed
// by the local number spaced in digit pairs ("+66 86 23 41 23 4" style
// grouping: a space after every two digits as long as more digits follow).
func FormatPhone(countryCode, number string) string {
	var b strings.Builder
	run := 0
	for i, r := range number {
		b.WriteRune(r)
		if r < '0' || r > '9' {
			run = 0
			continue
		}
		run++
		if run == 2 && hasMoreDigits(number, i+1) {
			b.WriteByte(' ')
			run = 0
		}
	}
	return countryCode + " " + b.String()
}

func hasMoreDigits(s string, from int) bool {
	for _, r := range s[from:] {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// NewID generates a reservation id from the clock's current time (base-36
// unix milliseconds) plus a short random suffix. Collisions are vanishingly
// unlikely but the store still rejects duplicates explicitly.
func NewID(c clock.Clock) string {
	ts := strconv.FormatInt(c.Now().UnixMilli(), 36)
	return "res-" + ts + "-" + uuid.NewString()[:4]
}

// ToReservation materializes the draft into a reservation record: fresh
// id and creation timestamp, pending status, catalog snapshot of the
// course name and total, and the deposit amount recorded as the initial
// payment. Pickup details are cleared when pickup is not requested. The
// caller is expected to have validated the draft first.
func (d *Draft) ToReservation(c clock.Clock) model.Reservation {
	course, ok := catalog.FindCourse(d.CourseID)
	total := 0
	courseName := ""
	if ok {
		total = pricing.ComputeTotal(course, d.DiverCount) - d.Discount
		courseName = course.Name
	}
	paid := pricing.ComputeDeposit(total, d.Deposit)

	divers := make([]string, 0, len(d.Contacts))
	contacts := make([]model.DiverContact, 0, len(d.Contacts))
	for _, ct := range d.Contacts {
		divers = append(divers, strings.TrimSpace(ct.Name))
		contacts = append(contacts, model.DiverContact{
			Name:        strings.TrimSpace(ct.Name),
			CountryCode: ct.CountryCode,
			PhoneNumber: ct.PhoneNumber,
		})
	}

	res := model.Reservation{
		ID:            NewID(c),
		CustomerName:  d.Name,
		Phone:         d.Phone,
		Email:         strings.TrimSpace(d.Email),
		Date:          d.Date,
		TimeSlot:      d.TimeSlot,
		DiverCount:    d.DiverCount,
		CourseID:      d.CourseID,
		CourseName:    courseName,
		TotalPrice:    total,
		Note:          strings.TrimSpace(d.Note),
		PaidAmount:    paid,
		Divers:        divers,
		DiverContacts: contacts,
		Status:        model.StatusPending,
		CreatedAt:     c.Now().Format(time.RFC3339),
	}
	if res.Date == "" {
		res.Date = clock.Today(c)
	}
	if d.NeedsPickup {
		res.NeedsPickup = true
		res.PickupLocation = strings.TrimSpace(d.PickupLocation)
		res.PickupArea = strings.TrimSpace(d.PickupArea)
	}
	return res
}

func intParam(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func stringParam(q url.Values, key, def string) string {
	if v := q.Get(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
