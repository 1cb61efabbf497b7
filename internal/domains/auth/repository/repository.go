package repository

//go:generate mockgen -destination=../mocks/repository_mock.go -package=mocks bengkel/internal/domains/auth/repository Session

import (
	"context"
	"fmt"

	"bengkel/infras/localstore"
	"bengkel/infras/otel"
	"bengkel/internal/domains/auth/model"
	"bengkel/shared/constant"
)

// Session persists the singleton login records: the current session and the
// remember-me flag. They live under their own storage keys, separate from
// the user and booking collections.
type Session interface {
	SaveCurrent(ctx context.Context, session model.Session) error
	Current(ctx context.Context) (model.Session, bool, error)
	ClearCurrent(ctx context.Context) error
	SetRemembered(ctx context.Context, remembered bool) error
	Remembered(ctx context.Context) (bool, error)
	ClearRemembered(ctx context.Context) error
}

type repositoryImpl struct {
	store *localstore.Store
	otel  otel.Otel
}

func New(store *localstore.Store, otel otel.Otel) Session {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) SaveCurrent(ctx context.Context, session model.Session) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.SaveCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Save(ctx, constant.StorageKeyCurrentUser, session); err != nil {
		return fmt.Errorf("failed to save current session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Current(ctx context.Context) (session model.Session, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	found, err = r.store.Load(ctx, constant.StorageKeyCurrentUser, &session)
	if err != nil {
		return session, false, fmt.Errorf("failed to load current session: %w", err)
	}

	return session, found, nil
}

func (r *repositoryImpl) ClearCurrent(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.ClearCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Delete(ctx, constant.StorageKeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) SetRemembered(ctx context.Context, remembered bool) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.SetRemembered")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Save(ctx, constant.StorageKeyRememberMe, remembered); err != nil {
		return fmt.Errorf("failed to save remember-me flag: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Remembered(ctx context.Context) (remembered bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Remembered")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = r.store.Load(ctx, constant.StorageKeyRememberMe, &remembered); err != nil {
		return false, fmt.Errorf("failed to load remember-me flag: %w", err)
	}

	return remembered, nil
}

func (r *repositoryImpl) ClearRemembered(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.ClearRemembered")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Delete(ctx, constant.StorageKeyRememberMe); err != nil {
		return fmt.Errorf("failed to clear remember-me flag: %w", err)
	}

	return nil
}
