package dto

import (
	bookingModel "bengkel/internal/domains/booking/model"
	"bengkel/internal/domains/report/model"
	gDto "bengkel/shared/dto"
)

// StatsResponse summarizes a user's bookings for the dashboard cards.
type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

func (r *StatsResponse) FromModels(bookings []bookingModel.Booking) {
	r.Total = len(bookings)

	for _, b := range bookings {
		switch {
		case b.Status == bookingModel.StatusCompleted:
			r.Completed++
		case b.IsOpen():
			r.Pending++
		}
	}
}

// BookingView is a booking with its enum values resolved to display labels.
type BookingView struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	VehicleType  string `json:"vehicle_type"`
	VehicleName  string `json:"vehicle_name"`
	LicensePlate string `json:"license_plate"`
	ServiceType  string `json:"service_type"`
	ServiceName  string `json:"service_name"`
	BookingDate  string `json:"booking_date"`
	Complaint    string `json:"complaint"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	StatusName   string `json:"status_name"`
	gDto.Metadata
}

func (v *BookingView) FromModel(b bookingModel.Booking) {
	v.ID = b.ID
	v.UserID = b.UserID
	v.UserName = b.UserName
	v.VehicleType = b.VehicleType
	v.VehicleName = model.VehicleName(b.VehicleType)
	v.LicensePlate = b.LicensePlate
	v.ServiceType = b.ServiceType
	v.ServiceName = model.ServiceName(b.ServiceType)
	v.BookingDate = b.BookingDate
	v.Complaint = b.Complaint
	v.Notes = b.Notes
	v.Status = b.Status
	v.StatusName = model.StatusName(b.Status)
	v.Metadata.FromModel(b.Metadata)
}

type GetBookingViewsResponse struct {
	Bookings []BookingView `json:"bookings"`
	Total    int           `json:"total"`
}

func (r *GetBookingViewsResponse) FromModels(bookings []bookingModel.Booking) {
	r.Bookings = make([]BookingView, len(bookings))
	r.Total = len(bookings)

	for i, b := range bookings {
		r.Bookings[i].FromModel(b)
	}
}
