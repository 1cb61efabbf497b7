package repository

import (
	"context"
	"fmt"

	"bengkel/infras/localstore"
	"bengkel/infras/otel"
	"bengkel/shared/constant"
	"bengkel/shared/failure"
	"bengkel/shared/logger"
)

// Repository is a generic collection repository over the local store. Each
// instance owns one persisted collection: the whole collection is loaded on
// every read and written back on every mutation, which keeps the store the
// single source of truth between operations.
type Repository[T any] struct {
	store  *localstore.Store
	otel   otel.Otel
	entity string
	key    string
	idOf   func(T) string
}

func NewRepository[T any](entityName, storageKey string, idOf func(T) string, store *localstore.Store, otl otel.Otel) Repository[T] {
	return Repository[T]{
		store:  store,
		otel:   otl,
		entity: entityName,
		key:    storageKey,
		idOf:   idOf,
	}
}

func (repo *Repository[T]) load(ctx context.Context) ([]T, error) {
	var items []T

	if _, err := repo.store.Load(ctx, repo.key, &items); err != nil {
		return nil, fmt.Errorf("failed to load collection (%s): %w", repo.entity, err)
	}

	return items, nil
}

func (repo *Repository[T]) save(ctx context.Context, items []T) error {
	if err := repo.store.Save(ctx, repo.key, items); err != nil {
		return fmt.Errorf("failed to save collection (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	id := repo.idOf(model)
	for _, item := range items {
		if repo.idOf(item) == id {
			return failure.Duplicate(fmt.Sprintf("%s id already exists", repo.entity)) //nolint:wrapcheck
		}
	}

	items = append(items, model)

	if err := repo.save(ctx, items); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, err
	}

	return items, nil
}

// Find returns every item matching the predicate, preserving stored order.
func (repo *Repository[T]) Find(ctx context.Context, pred func(T) bool) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, err
	}

	matched := []T{}
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}

	return matched, nil
}

// FindOne returns the first item matching the predicate and whether any
// item matched.
func (repo *Repository[T]) FindOne(ctx context.Context, pred func(T) bool) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindOne", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var zero T

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return zero, false, err
	}

	for _, item := range items {
		if pred(item) {
			return item, true, nil
		}
	}

	return zero, false, nil
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	return repo.FindOne(ctx, func(item T) bool {
		return repo.idOf(item) == id
	})
}

func (repo *Repository[T]) Exist(ctx context.Context, pred func(T) bool) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	_, found, err := repo.FindOne(ctx, pred)

	return found, err
}

func (repo *Repository[T]) Count(ctx context.Context, pred func(T) bool) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	items, err := repo.Find(ctx, pred)
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// Update applies the mutation to the item with the given id and persists the
// collection. When the id is absent nothing is written and a NotFound
// failure is returned.
func (repo *Repository[T]) Update(ctx context.Context, id string, apply func(*T)) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var zero T

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return zero, err
	}

	for i := range items {
		if repo.idOf(items[i]) != id {
			continue
		}

		apply(&items[i])

		if err := repo.save(ctx, items); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return zero, err
		}

		return items[i], nil
	}

	return zero, failure.NotFound(fmt.Sprintf("%s not found", repo.entity)) //nolint:wrapcheck
}

// Delete removes the item with the given id and persists the collection.
func (repo *Repository[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	kept := items[:0]
	found := false

	for _, item := range items {
		if repo.idOf(item) == id {
			found = true

			continue
		}

		kept = append(kept, item)
	}

	if !found {
		return failure.NotFound(fmt.Sprintf("%s not found", repo.entity)) //nolint:wrapcheck
	}

	if err := repo.save(ctx, kept); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	return nil
}
