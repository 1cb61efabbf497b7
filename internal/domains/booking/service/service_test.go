package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bengkel/config"
	"bengkel/infras/otel/mocks"
	bookingMocks "bengkel/internal/domains/booking/mocks"
	"bengkel/internal/domains/booking/model"
	"bengkel/internal/domains/booking/model/dto"
	"bengkel/internal/domains/booking/service"
	userMocks "bengkel/internal/domains/user/mocks"
	userModel "bengkel/internal/domains/user/model"
	cacheMocks "bengkel/shared/cache/mocks"
	"bengkel/shared/failure"
	gModel "bengkel/shared/model"
)

type fixture struct {
	svc         service.Booking
	bookingRepo *bookingMocks.MockBooking
	userRepo    *userMocks.MockUser
	cfg         *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)
	cfg := &config.Config{}

	return fixture{
		svc:         service.New(bookingRepo, userRepo, cfg, cacheMocks.NewCache(), mocks.NewOtel()),
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		VehicleType:  model.VehicleMotor,
		LicensePlate: "b 1234 xyz",
		ServiceType:  model.ServiceOilChange,
		BookingDate:  "2024-05-17",
		Complaint:    "mesin kasar saat idle",
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)

	owner := userModel.User{ID: "user_1", FullName: "Budi Santoso", Username: "budi"}

	f.userRepo.EXPECT().
		Get(gomock.Any(), owner.ID).
		Return(owner, true, nil)

	var inserted model.Booking

	f.bookingRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b model.Booking) error {
			inserted = b

			return nil
		})

	res, err := f.svc.Create(context.Background(), owner.ID, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "B 1234 XYZ", res.LicensePlate)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "Budi Santoso", res.UserName)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, res.ID, inserted.ID)
}

func TestBookingService_Create_UnknownOwner(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().
		Get(gomock.Any(), "user_missing").
		Return(userModel.User{}, false, nil)

	_, err := f.svc.Create(context.Background(), "user_missing", validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Create_InvalidRequest(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{"missing complaint", func(r *dto.CreateBookingRequest) { r.Complaint = "" }},
		{"unknown vehicle type", func(r *dto.CreateBookingRequest) { r.VehicleType = "sepeda" }},
		{"unknown service type", func(r *dto.CreateBookingRequest) { r.ServiceType = "cuci-motor" }},
		{"malformed booking date", func(r *dto.CreateBookingRequest) { r.BookingDate = "17-05-2024" }},
		{"impossible booking date", func(r *dto.CreateBookingRequest) { r.BookingDate = "2024-02-30" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), "user_1", req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func bookingAt(id, ownerID, date, status string, createdAt time.Time) model.Booking {
	return model.Booking{
		ID:          id,
		UserID:      ownerID,
		VehicleType: model.VehicleMotor,
		ServiceType: model.ServiceOilChange,
		BookingDate: date,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt,
		},
	}
}

func TestBookingService_GetByOwner(t *testing.T) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	stored := []model.Booking{
		bookingAt("BK1", "user_1", "2024-05-17", model.StatusPending, base),
		bookingAt("BK2", "user_2", "2024-05-18", model.StatusPending, base.Add(time.Hour)),
		bookingAt("BK3", "user_1", "2024-06-01", model.StatusCompleted, base.Add(2*time.Hour)),
		bookingAt("BK4", "user_1", "2024-05-20", model.StatusConfirmed, base.Add(3*time.Hour)),
	}

	filterStored := func(_ context.Context, pred func(model.Booking) bool) ([]model.Booking, error) {
		matched := []model.Booking{}
		for _, b := range stored {
			if pred(b) {
				matched = append(matched, b)
			}
		}

		return matched, nil
	}

	tests := []struct {
		name    string
		ownerID string
		query   dto.ListBookingsQuery
		wantIDs []string
	}{
		{
			name:    "own bookings sorted newest first",
			ownerID: "user_1",
			wantIDs: []string{"BK4", "BK3", "BK1"},
		},
		{
			name:    "status filter",
			ownerID: "user_1",
			query:   dto.ListBookingsQuery{Status: model.StatusPending},
			wantIDs: []string{"BK1"},
		},
		{
			name:    "month prefix includes only that month",
			ownerID: "user_1",
			query:   dto.ListBookingsQuery{DateFilter: "2024-05"},
			wantIDs: []string{"BK4", "BK1"},
		},
		{
			name:    "filters combine conjunctively",
			ownerID: "user_1",
			query:   dto.ListBookingsQuery{Status: model.StatusConfirmed, DateFilter: "2024-05"},
			wantIDs: []string{"BK4"},
		},
		{
			name:    "no matches yields empty list",
			ownerID: "user_1",
			query:   dto.ListBookingsQuery{Status: model.StatusCancelled},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.bookingRepo.EXPECT().
				Find(gomock.Any(), gomock.Any()).
				DoAndReturn(filterStored)

			res, err := f.svc.GetByOwner(context.Background(), tt.ownerID, tt.query)
			require.NoError(t, err)

			gotIDs := make([]string, len(res.Bookings))
			for i, b := range res.Bookings {
				gotIDs[i] = b.ID
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, len(tt.wantIDs), res.TotalData)
		})
	}

	t.Run("GetAll spans every owner", func(t *testing.T) {
		f := newFixture(t)

		f.bookingRepo.EXPECT().
			Find(gomock.Any(), gomock.Any()).
			DoAndReturn(filterStored)

		res, err := f.svc.GetAll(context.Background(), dto.ListBookingsQuery{})
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalData)
		assert.Equal(t, "BK4", res.Bookings[0].ID)
	})
}

func TestBookingService_GetByOwner_InvalidDateFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByOwner(context.Background(), "user_1", dto.ListBookingsQuery{DateFilter: "mei-2024"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_Update(t *testing.T) {
	f := newFixture(t)

	stored := bookingAt("BK1", "user_1", "2024-05-17", model.StatusPending, time.Now())

	f.bookingRepo.EXPECT().
		Update(gomock.Any(), "BK1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, apply func(*model.Booking)) (model.Booking, error) {
			updated := stored
			apply(&updated)

			return updated, nil
		})

	res, err := f.svc.Update(context.Background(), "BK1", dto.UpdateBookingRequest{Status: model.StatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	// Untouched fields survive a partial update.
	assert.Equal(t, "2024-05-17", res.BookingDate)
}

func TestBookingService_Update_EmptyRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), "BK1", dto.UpdateBookingRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_Update_AbsentBooking(t *testing.T) {
	f := newFixture(t)

	f.bookingRepo.EXPECT().
		Update(gomock.Any(), "BK404", gomock.Any()).
		Return(model.Booking{}, failure.NotFound("booking not found"))

	_, err := f.svc.Update(context.Background(), "BK404", dto.UpdateBookingRequest{Status: model.StatusConfirmed})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Update_StrictStatusFlow(t *testing.T) {
	f := newFixture(t)
	f.cfg.App.StrictStatusFlow = true

	stored := bookingAt("BK1", "user_1", "2024-05-17", model.StatusCompleted, time.Now())

	t.Run("rejects leaving a terminal status", func(t *testing.T) {
		f.bookingRepo.EXPECT().
			Get(gomock.Any(), "BK1").
			Return(stored, true, nil)

		_, err := f.svc.Update(context.Background(), "BK1", dto.UpdateBookingRequest{Status: model.StatusPending})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("allows a legal transition", func(t *testing.T) {
		pending := bookingAt("BK2", "user_1", "2024-05-17", model.StatusPending, time.Now())

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), "BK2").
			Return(pending, true, nil)

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), "BK2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, apply func(*model.Booking)) (model.Booking, error) {
				updated := pending
				apply(&updated)

				return updated, nil
			})

		res, err := f.svc.Update(context.Background(), "BK2", dto.UpdateBookingRequest{Status: model.StatusConfirmed})
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("non-status edits skip the transition check", func(t *testing.T) {
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), "BK1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, apply func(*model.Booking)) (model.Booking, error) {
				updated := stored
				apply(&updated)

				return updated, nil
			})

		res, err := f.svc.Update(context.Background(), "BK1", dto.UpdateBookingRequest{VehicleType: model.VehicleCar})
		require.NoError(t, err)
		assert.Equal(t, model.VehicleCar, res.VehicleType)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deletes an existing booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookingRepo.EXPECT().
			Delete(gomock.Any(), "BK1").
			Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), "BK1"))
	})

	t.Run("absent booking is not found", func(t *testing.T) {
		f := newFixture(t)

		f.bookingRepo.EXPECT().
			Delete(gomock.Any(), "BK404").
			Return(failure.NotFound("booking not found"))

		err := f.svc.Delete(context.Background(), "BK404")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
