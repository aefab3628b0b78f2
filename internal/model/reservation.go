package model

// Reservation statuses. A reservation starts as StatusPending and moves
// through the remaining states at the staff's discretion; the service does
// not enforce transitions between them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCheckedIn = "checked-in"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DiverContact is one person's contact details inside a multi-diver
// reservation. Index 0 of a reservation's contact list is always the
// primary/billing contact; its name and phone are mirrored into the
// reservation's top-level CustomerName and Phone fields.
type DiverContact struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Reservation records one booked dive session for one customer group.
//
// CourseID, CourseName and TotalPrice are a denormalized snapshot of the
// catalog entry at booking time; they are never recomputed afterwards even
// if the catalog changes. PaidAmount is independently mutable and may
// legitimately exceed TotalPrice: the remaining balance is allowed to go
// negative and is never clamped.
//
// Date is a local calendar date formatted YYYY-MM-DD. TimeSlot and
// SessionID are free-text labels ("10:00", "AM-1") denoting the trip slot.
type Reservation struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	DiverCount   int    `json:"diverCount"`
	CourseID     string `json:"courseId"`
	CourseName   string `json:"courseName"`
	TotalPrice   int    `json:"totalPrice"`
	SessionID    string `json:"sessionId,omitempty"`

	// SpecialRequests is the canonical free-text request field. The legacy
	// "request" key is accepted as an input alias at the HTTP boundary and
	// folded into this field.
	SpecialRequests string `json:"specialRequests,omitempty"`
	Note            string `json:"note,omitempty"`

	NeedsPickup    bool   `json:"needsPickup,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	PickupArea     string `json:"pickupArea,omitempty"`

	PaidAmount int `json:"paidAmount"`

	// Divers holds the names of everyone diving; DiverContacts holds the
	// full per-diver contact records. When populated, both lists have
	// exactly DiverCount entries.
	Divers        []string       `json:"divers,omitempty"`
	DiverContacts []DiverContact `json:"diverContacts,omitempty"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
