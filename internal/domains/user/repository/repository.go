package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bengkel/infras/localstore"
	"bengkel/infras/otel"
	"bengkel/internal/domains/user/model"
	"bengkel/shared/constant"
	gRepo "bengkel/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, id string) (model.User, bool, error)
	GetAll(ctx context.Context) ([]model.User, error)
	FindOne(ctx context.Context, pred func(model.User) bool) (model.User, bool, error)
	Exist(ctx context.Context, pred func(model.User) bool) (bool, error)
	Count(ctx context.Context, pred func(model.User) bool) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	store *localstore.Store
	otel  otel.Otel
}

func New(store *localstore.Store, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, constant.StorageKeyUsers, func(u model.User) string { return u.ID }, store, otel),
		store:      store,
		otel:       otel,
	}
}
