package model

import (
	bookingModel "bengkel/internal/domains/booking/model"
)

// Display labels for the raw enum values kept on bookings. Every screen
// renders from these tables so a wording change only happens once.
var (
	vehicleNames = map[string]string{
		bookingModel.VehicleMotor: "Motor",
		bookingModel.VehicleCar:   "Mobil",
		bookingModel.VehicleTruck: "Truk",
		bookingModel.VehicleBus:   "Bus",
	}

	serviceNames = map[string]string{
		bookingModel.ServiceRoutine:      "Service Rutin",
		bookingModel.ServiceEngineRepair: "Perbaikan Mesin",
		bookingModel.ServiceOilChange:    "Ganti Oli",
		bookingModel.ServiceTireChange:   "Ganti Ban",
		bookingModel.ServiceTuneUp:       "Tune Up",
		bookingModel.ServiceAC:           "Service AC",
		bookingModel.ServiceOther:        "Lainnya",
	}

	statusNames = map[string]string{
		bookingModel.StatusPending:    "Menunggu",
		bookingModel.StatusConfirmed:  "Terkonfirmasi",
		bookingModel.StatusInProgress: "Dalam Proses",
		bookingModel.StatusCompleted:  "Selesai",
		bookingModel.StatusCancelled:  "Dibatalkan",
	}
)

func labelOf(table map[string]string, value string) string {
	if name, ok := table[value]; ok {
		return name
	}

	// Unknown values render as-is rather than hiding the record.
	return value
}

// VehicleName returns the display label for a vehicle type value.
func VehicleName(value string) string {
	return labelOf(vehicleNames, value)
}

// ServiceName returns the display label for a service type value.
func ServiceName(value string) string {
	return labelOf(serviceNames, value)
}

// StatusName returns the display label for a booking status value.
func StatusName(value string) string {
	return labelOf(statusNames, value)
}
