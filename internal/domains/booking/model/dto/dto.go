package dto

import (
	"strings"

	"bengkel/internal/domains/booking/model"
	"bengkel/shared"
	"bengkel/shared/constant"
	gDto "bengkel/shared/dto"
	gModel "bengkel/shared/model"
	"bengkel/shared/timezone"
)

type CreateBookingRequest struct {
	VehicleType  string `json:"vehicle_type"  validate:"required,oneof=motor mobil truk bus"`
	LicensePlate string `json:"license_plate" validate:"required"`
	ServiceType  string `json:"service_type"  validate:"required,oneof=service-rutin perbaikan-mesin ganti-oli ganti-ban tune-up service-ac lainnya"`
	BookingDate  string `json:"booking_date"  validate:"required,calendardate"`
	Complaint    string `json:"complaint"     validate:"required"`
	Notes        string `json:"notes"         validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(ownerID, ownerName string) model.Booking {
	return model.Booking{
		ID:           shared.NewTimeID(constant.BookingIDPrefix),
		UserID:       ownerID,
		UserName:     ownerName,
		VehicleType:  c.VehicleType,
		LicensePlate: strings.ToUpper(c.LicensePlate),
		ServiceType:  c.ServiceType,
		BookingDate:  c.BookingDate,
		Complaint:    c.Complaint,
		Notes:        c.Notes,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateBookingRequest carries the partial patch the admin edit flow
// mutates. Empty fields are left untouched.
type UpdateBookingRequest struct {
	VehicleType string `json:"vehicle_type" validate:"omitempty,oneof=motor mobil truk bus"`
	ServiceType string `json:"service_type" validate:"omitempty,oneof=service-rutin perbaikan-mesin ganti-oli ganti-ban tune-up service-ac lainnya"`
	BookingDate string `json:"booking_date" validate:"omitempty,calendardate"`
	Status      string `json:"status"       validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
}

// ApplyTo copies the non-empty patch fields onto the booking and refreshes
// the modification timestamp.
func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking) {
	if u.VehicleType != "" {
		booking.VehicleType = u.VehicleType
	}

	if u.ServiceType != "" {
		booking.ServiceType = u.ServiceType
	}

	if u.BookingDate != "" {
		booking.BookingDate = u.BookingDate
	}

	if u.Status != "" {
		booking.Status = u.Status
	}

	booking.ModifiedAt = timezone.Now()
}

// ListBookingsQuery holds the optional, conjunctive list filters. DateFilter
// is a string-prefix match against the booking date, so "2024" and "2024-05"
// select a whole year or month.
type ListBookingsQuery struct {
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
	DateFilter string `json:"date_filter" validate:"omitempty,datefilter"`
}

// Matches reports whether the booking passes every set filter.
func (q *ListBookingsQuery) Matches(booking model.Booking) bool {
	if q.Status != "" && booking.Status != q.Status {
		return false
	}

	if q.DateFilter != "" && !strings.HasPrefix(booking.BookingDate, q.DateFilter) {
		return false
	}

	return true
}

type BookingResponse struct {
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
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.VehicleType = model.VehicleType
	r.LicensePlate = model.LicensePlate
	r.ServiceType = model.ServiceType
	r.BookingDate = model.BookingDate
	r.Complaint = model.Complaint
	r.Notes = model.Notes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
