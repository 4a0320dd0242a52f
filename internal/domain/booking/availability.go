package booking

// Slot is an ephemeral value: one fixed-grid candidate start time with an
// availability flag. Never persisted, produced fresh per query.
type Slot struct {
	Time        string `json:"time"` // "HH:MM" local
	IsAvailable bool   `json:"is_available"`
}

// DayAvailability is the slot-query result for one vendor/service/date.
type DayAvailability struct {
	VendorID  string `json:"vendor_id"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	Slots     []Slot `json:"slots"`
}
