package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bengkel/infras/localstore"
	"bengkel/infras/otel"
	"bengkel/internal/domains/booking/model"
	"bengkel/shared/constant"
	gRepo "bengkel/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, bool, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Find(ctx context.Context, pred func(model.Booking) bool) ([]model.Booking, error)
	Count(ctx context.Context, pred func(model.Booking) bool) (int, error)
	Update(ctx context.Context, id string, apply func(*model.Booking)) (model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	store *localstore.Store
	otel  otel.Otel
}

func New(store *localstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, constant.StorageKeyBookings, func(b model.Booking) string { return b.ID }, store, otel),
		store:      store,
		otel:       otel,
	}
}
