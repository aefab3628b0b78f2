package repository

import (
	"time"

	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/model"
)

// Seed fills the repository with the demo reservations used until a real
// booking source exists. Dates are computed from the supplied clock at seed
// time, so the first three records land on today and the last two on
// tomorrow. Seeding an already-populated repository returns the first
// duplicate-ID error encountered.
func Seed(r *ReservationRepo, c clock.Clock) error {
	now := c.Now()
	today := clock.Today(c)
	tomorrow := clock.Tomorrow(c)
	createdAt := now.Format(time.RFC3339)

	fixtures := []model.Reservation{
		{
			ID:              "res-001",
			CustomerName:    "John Smith",
			Phone:           "+66 86 234 1234",
			Email:           "john@example.com",
			Date:            today,
			TimeSlot:        "10:00",
			DiverCount:      2,
			CourseID:        "open-water",
			CourseName:      "Open Water",
			TotalPrice:      19000,
			SessionID:       "AM-1",
			SpecialRequests: "Equipment rental, Hotel pickup",
			PaidAmount:      10000,
			Divers:          []string{"John Smith", "Jane Doe"},
			DiverContacts: []model.DiverContact{
				{Name: "John Smith", CountryCode: "+66", PhoneNumber: "862341234"},
				{Name: "Jane Doe", CountryCode: "+66", PhoneNumber: "812345678"},
			},
			Status:    model.StatusConfirmed,
			CreatedAt: createdAt,
		},
		{
			ID:           "res-002",
			CustomerName: "Sarah Lee",
			Phone:        "+1 555 123 4567",
			Email:        "sarah@example.com",
			Date:         today,
			TimeSlot:     "10:00",
			DiverCount:   4,
			CourseID:     "try-scuba",
			CourseName:   "Basic Diver",
			TotalPrice:   13000,
			SessionID:    "AM-1",
			Note:         "First time divers",
			PaidAmount:   13000,
			Divers:       []string{"Sarah Lee", "Tom Lee", "Emma Lee", "Jack Lee"},
			DiverContacts: []model.DiverContact{
				{Name: "Sarah Lee", CountryCode: "+1", PhoneNumber: "5551234567"},
				{Name: "Tom Lee", CountryCode: "+1", PhoneNumber: "5552345678"},
				{Name: "Emma Lee", CountryCode: "+1", PhoneNumber: "5553456789"},
				{Name: "Jack Lee", CountryCode: "+1", PhoneNumber: "5554567890"},
			},
			Status:    model.StatusConfirmed,
			CreatedAt: createdAt,
		},
		{
			ID:           "res-003",
			CustomerName: "Alex Chen",
			Phone:        "+86 138 0013 8000",
			Email:        "alex@example.com",
			Date:         today,
			TimeSlot:     "14:00",
			DiverCount:   1,
			CourseID:     "refresh",
			CourseName:   "Refresh",
			TotalPrice:   1500,
			SessionID:    "PM-1",
			PaidAmount:   0,
			Divers:       []string{"Alex Chen"},
			DiverContacts: []model.DiverContact{
				{Name: "Alex Chen", CountryCode: "+86", PhoneNumber: "13800138000"},
			},
			Status:    model.StatusPending,
			CreatedAt: createdAt,
		},
		{
			ID:              "res-004",
			CustomerName:    "Emma Wilson",
			Phone:           "+44 7700 900123",
			Email:           "emma@example.com",
			Date:            tomorrow,
			TimeSlot:        "10:00",
			DiverCount:      3,
			CourseID:        "fun-dives",
			CourseName:      "Buffet Fun Dives",
			TotalPrice:      40500,
			SessionID:       "AM-1",
			SpecialRequests: "Hotel pickup - Sairee Beach",
			PaidAmount:      20000,
			Divers:          []string{"Emma Wilson", "James Wilson", "Olivia Wilson"},
			DiverContacts: []model.DiverContact{
				{Name: "Emma Wilson", CountryCode: "+44", PhoneNumber: "7700900123"},
				{Name: "James Wilson", CountryCode: "+44", PhoneNumber: "7700900124"},
				{Name: "Olivia Wilson", CountryCode: "+44", PhoneNumber: "7700900125"},
			},
			Status:    model.StatusConfirmed,
			CreatedAt: createdAt,
		},
		{
			ID:           "res-005",
			CustomerName: "Mike Johnson",
			Phone:        "+66 81 234 5678",
			Email:        "mike@example.com",
			Date:         tomorrow,
			TimeSlot:     "14:00",
			DiverCount:   2,
			CourseID:     "advanced-open-water",
			CourseName:   "Advanced Adventurer",
			TotalPrice:   18000,
			SessionID:    "PM-1",
			PaidAmount:   18000,
			Divers:       []string{"Mike Johnson", "Lisa Johnson"},
			DiverContacts: []model.DiverContact{
				{Name: "Mike Johnson", CountryCode: "+66", PhoneNumber: "812345678"},
				{Name: "Lisa Johnson", CountryCode: "+66", PhoneNumber: "812345679"},
			},
			Status:    model.StatusConfirmed,
			CreatedAt: createdAt,
		},
	}

	for _, f := range fixtures {
		if err := r.Add(f); err != nil {
			return err
		}
	}
	return nil
}
