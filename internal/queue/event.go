// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published whenever a reservation enters the
// store, whether it came from the booking wizard or the POS "new
// reservation" modal. It carries enough information for downstream
// consumers to log or notify without reading the store.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	Source        string `json:"source"` // "wizard" or "pos"
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	DiverCount    int    `json:"diver_count"`
	CourseID      string `json:"course_id"`
	CourseName    string `json:"course_name"`
	TotalPrice    int    `json:"total_price"`
	PaidAmount    int    `json:"paid_amount"`
	CreatedAt     string `json:"created_at"`
}
