// Package catalog holds the static course catalog consumed by both the
// booking wizard and the POS dashboard. The data mirrors the Koh Tao Scuba
// Club course list; prices are per diver in whole THB.
package catalog

import "github.com/kohtao/scuba-reservation/internal/model"

// Courses is the full, immutable list of bookable packages. Consumers must
// treat it as read-only.
var Courses = []model.CoursePackage{
	{
		ID:          "try-scuba",
		Name:        "Basic Diver",
		Description: "1 day, 2 dive experience incl. 1 night accommodation",
		Duration:    "1 day",
		PriceTHB:    3250,
		Highlights:  []string{"2 dives", "1 night accommodation", "Beginner friendly"},
	},
	{
		ID:          "open-water",
		Name:        "Open Water",
		Description: "3 days, incl. certification & accommodation",
		Duration:    "3 days",
		PriceTHB:    9500,
		Highlights:  []string{"Full certification", "Accommodation included", "PADI certified"},
	},
	{
		ID:          "advanced-open-water",
		Name:        "Advanced Adventurer",
		Description: "2 days, 5 adventure dives incl. accommodation",
		Duration:    "2 days",
		PriceTHB:    9000,
		Highlights:  []string{"5 adventure dives", "Accommodation included", "Advanced certification"},
	},
	{
		ID:          "stress-rescue",
		Name:        "Stress & Rescue",
		Description: "2 day, 4 dives incl. 2 night accommodation",
		Duration:    "2 days",
		PriceTHB:    9000,
		Highlights:  []string{"4 dives", "2 night accommodation", "Rescue certification"},
	},
	{
		ID:          "refresh",
		Name:        "Refresh",
		Description: "1 dive at swimming pool or ocean",
		Duration:    "Half day",
		PriceTHB:    1500,
		Highlights:  []string{"1 dive", "Pool or ocean", "Skill refresh"},
	},
	{
		ID:          "fun-dives",
		Name:        "Buffet Fun Dives",
		Description: "1 week unlimited fun diving, 28 dives total",
		Duration:    "1 week",
		PriceTHB:    13500,
		Highlights:  []string{"28 dives", "Unlimited diving", "1 week package"},
	},
	{
		ID:          "divemaster",
		Name:        "Dive Master",
		Description: "Up to 3 months unlimited diving & training",
		Duration:    "Up to 3 months",
		PriceTHB:    35000,
		Highlights:  []string{"Unlimited diving", "Professional training", "Up to 3 months"},
	},
	{
		ID:          "instructor",
		Name:        "Instructor Training Course",
		Description: "2 Week Instructor Training Course",
		Duration:    "2 weeks",
		PriceTHB:    75000,
		Highlights:  []string{"Instructor certification", "2 weeks intensive", "Professional level"},
	},
}

// FindCourse looks a package up by its ID. The boolean result reports
// whether the package exists; callers must degrade to a "no course
// selected" state (zero prices) on a miss rather than failing.
func FindCourse(id string) (model.CoursePackage, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.CoursePackage{}, false
}
