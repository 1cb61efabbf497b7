package model

import (
	"slices"

	"bengkel/shared/model"
)

const (
	EntityName = "booking"
)

const (
	VehicleMotor = "motor"
	VehicleCar   = "mobil"
	VehicleTruck = "truk"
	VehicleBus   = "bus"
)

const (
	ServiceRoutine      = "service-rutin"
	ServiceEngineRepair = "perbaikan-mesin"
	ServiceOilChange    = "ganti-oli"
	ServiceTireChange   = "ganti-ban"
	ServiceTuneUp       = "tune-up"
	ServiceAC           = "service-ac"
	ServiceOther        = "lainnya"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking is one service request for one vehicle, owned by one user. The
// owner display name is denormalized onto the record at creation time.
type Booking struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	VehicleType  string `json:"vehicle_type"`
	LicensePlate string `json:"license_plate"`
	ServiceType  string `json:"service_type"`
	BookingDate  string `json:"booking_date"`
	Complaint    string `json:"complaint"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	model.Metadata
}

// IsOpen reports whether the booking still awaits completion: pending,
// confirmed and in-progress all count as open.
func (b Booking) IsOpen() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// allowedTransitions is the strict status flow. It is only consulted when
// APP_STRICT_STATUS_FLOW is enabled; by default any status may replace any
// other, matching the unconstrained behavior the admin edit flow always had.
var allowedTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether from -> to is allowed under the strict flow.
// Setting the current status again is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}

	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}

	return slices.Contains(allowed, to)
}
