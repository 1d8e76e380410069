package models

// TimeSlots is the fixed list of candidate start times spanning the business
// day. The booking form offers exactly these labels and appointments store
// them verbatim.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
}

// Unavailability reasons exposed by the availability evaluator. These are
// result values, not errors: the UI renders a specific message per reason.
const (
	ReasonBlockedDate   = "blocked-date"
	ReasonClosedDay     = "closed-day"
	ReasonOutsideHours  = "outside-hours"
	ReasonAlreadyBooked = "already-booked"
)

// SlotStatus is the evaluator's verdict for a single candidate slot.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// DayAvailability is the full decision for one date and service: either a
// date-level rejection (blocked or closed) or a per-slot breakdown.
type DayAvailability struct {
	Date    string       `json:"date"`
	Service string       `json:"service,omitempty"`
	Blocked bool         `json:"blocked"`
	Reason  string       `json:"reason,omitempty"`
	Detail  string       `json:"detail,omitempty"`
	Open    bool         `json:"open"`
	Slots   []SlotStatus `json:"slots"`
}
