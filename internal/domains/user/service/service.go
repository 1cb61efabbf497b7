package service

import (
	"context"
	"fmt"

	"bengkel/config"
	"bengkel/infras/otel"
	"bengkel/internal/domains/user/model"
	"bengkel/internal/domains/user/model/dto"
	"bengkel/internal/domains/user/repository"
	"bengkel/shared/constant"
	"bengkel/shared/failure"
	gModel "bengkel/shared/model"
	"bengkel/shared/timezone"
	"bengkel/shared/validator"

	"github.com/rs/zerolog/log"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, error)
	FindByUsernameOrEmail(ctx context.Context, identity string) (dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	// Uniqueness is a case-sensitive exact match on either field.
	taken, err := s.repo.Exist(ctx, func(u model.User) bool {
		return u.Username == req.Username || u.Email == req.Email
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if taken {
		return res, failure.Duplicate("username atau email sudah terdaftar") //nolint:wrapcheck
	}

	user := req.ToModel()

	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, found, err := s.repo.FindOne(ctx, func(u model.User) bool {
		return (u.Username == req.Identity || u.Email == req.Identity) && u.Password == req.Password
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	if !found {
		// One error for both unknown user and wrong password.
		log.Warn().Str("identity", req.Identity).Msg("login attempt with invalid credentials")

		return res, failure.InvalidCredentials
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) FindByUsernameOrEmail(ctx context.Context, identity string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByUsernameOrEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(identity, "required"); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, found, err := s.repo.FindOne(ctx, func(u model.User) bool {
		return u.Username == identity || u.Email == identity
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	if !found {
		return res, failure.AccountNotFound
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

// EnsureDefaultAdmin seeds the reserved administrator account on first run.
// It is idempotent: once any user with the reserved id exists, nothing is
// written.
func (s *serviceImpl) EnsureDefaultAdmin(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureDefaultAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, found, err := s.repo.Get(ctx, s.cfg.Admin.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for seeded administrator")

		return fmt.Errorf("failed to check for seeded administrator: %w", err)
	}

	if found {
		return nil
	}

	admin := model.User{
		ID:       s.cfg.Admin.ID,
		FullName: s.cfg.Admin.FullName,
		Username: s.cfg.Admin.Username,
		Password: s.cfg.Admin.Password,
		Email:    s.cfg.Admin.Email,
		Phone:    s.cfg.Admin.Phone,
		Address:  s.cfg.Admin.Address,
		Role:     constant.RoleAdmin,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to seed administrator")

		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	log.Info().Str("username", admin.Username).Msg("Seeded default administrator account")

	return nil
}
