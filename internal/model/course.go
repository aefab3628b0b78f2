package model

// CoursePackage describes one bookable dive course offered by the shop.
// The catalog of packages is static reference data: it is loaded once at
// startup and never mutated for the lifetime of the process.
//
// Fields:
//  ID          – stable string identifier (e.g. "open-water").
//  Name        – display name shown to customers and staff.
//  Description – one-line summary of what the package includes.
//  Duration    – human-readable duration label (e.g. "3 days").
//  PriceTHB    – price per diver in whole Thai baht.
//  Highlights  – optional short selling points.
type CoursePackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	PriceTHB    int      `json:"price"`
	Highlights  []string `json:"highlights,omitempty"`
}
