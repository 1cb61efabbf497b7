package service

import (
	"context"
	"fmt"
	"net/http"

	"bengkel/infras/otel"
	"bengkel/internal/domains/auth/model"
	"bengkel/internal/domains/auth/model/dto"
	"bengkel/internal/domains/auth/repository"
	userDto "bengkel/internal/domains/user/model/dto"
	userService "bengkel/internal/domains/user/service"
	"bengkel/permissions"
	"bengkel/shared/constant"
	"bengkel/shared/failure"
	"bengkel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req userDto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req userDto.LoginRequest) (dto.SessionResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (userDto.UserResponse, bool, error)
	Remembered(ctx context.Context) (bool, error)
	RequestPasswordReset(ctx context.Context, identity string) error
	IsAdmin(user userDto.UserResponse) bool
	Authorize(user userDto.UserResponse, action string) error
}

type serviceImpl struct {
	sessionRepo repository.Session
	userService userService.User
	otel        otel.Otel
}

func New(sessionRepo repository.Session, userService userService.User, otel otel.Otel) Auth {
	return &serviceImpl{
		sessionRepo: sessionRepo,
		userService: userService,
		otel:        otel,
	}
}

// Register creates the account without opening a session; the caller logs in
// afterwards.
func (s *serviceImpl) Register(ctx context.Context, req userDto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.userService.Register(ctx, req)
}

func (s *serviceImpl) Login(ctx context.Context, req userDto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userService.Authenticate(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	session := model.Session{
		UserID:     user.ID,
		Role:       user.Role,
		LoggedInAt: timezone.Now(),
	}

	if err = s.sessionRepo.SaveCurrent(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	if req.Remember {
		if err = s.sessionRepo.SetRemembered(ctx, true); err != nil {
			log.Error().Err(err).Msg("failed to save remember-me flag")

			return res, fmt.Errorf("failed to save remember-me flag: %w", err)
		}
	} else if err = s.sessionRepo.ClearRemembered(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear remember-me flag")

		return res, fmt.Errorf("failed to clear remember-me flag: %w", err)
	}

	res.FromModel(session, user, req.Remember)

	return res, nil
}

// Logout clears the session and the remember-me flag together.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.sessionRepo.ClearCurrent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	if err = s.sessionRepo.ClearRemembered(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear remember-me flag")

		return fmt.Errorf("failed to clear remember-me flag: %w", err)
	}

	return nil
}

// Current resolves the logged-in user, if any. A session pointing at a user
// that no longer exists is treated as logged out and cleaned up.
func (s *serviceImpl) Current(ctx context.Context) (res userDto.UserResponse, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, found, err := s.sessionRepo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")

		return res, false, fmt.Errorf("failed to load session: %w", err)
	}

	if !found {
		return res, false, nil
	}

	res, err = s.userService.Get(ctx, session.UserID)
	if err != nil {
		if failure.Is(err, http.StatusNotFound) {
			if err := s.sessionRepo.ClearCurrent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to clear stale session")
			}

			return userDto.UserResponse{}, false, nil
		}

		return userDto.UserResponse{}, false, err //nolint:wrapcheck
	}

	return res, true, nil
}

func (s *serviceImpl) Remembered(ctx context.Context) (remembered bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remembered")
	defer scope.End()
	defer scope.TraceIfError(err)

	remembered, err = s.sessionRepo.Remembered(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load remember-me flag")

		return false, fmt.Errorf("failed to load remember-me flag: %w", err)
	}

	return remembered, nil
}

// RequestPasswordReset only verifies the account exists. No mail is sent;
// the caller shows a generic confirmation either way it chooses.
func (s *serviceImpl) RequestPasswordReset(ctx context.Context, identity string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestPasswordReset")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.userService.FindByUsernameOrEmail(ctx, identity); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) IsAdmin(user userDto.UserResponse) bool {
	return user.Role == constant.RoleAdmin
}

// Authorize checks the user's role against the embedded permissions table.
// Unknown actions are denied.
func (s *serviceImpl) Authorize(user userDto.UserResponse, action string) error {
	if !permissions.Get().Allows(action, user.Role) {
		return failure.Forbidden(fmt.Sprintf("role %s is not allowed to %s", user.Role, action)) //nolint:wrapcheck
	}

	return nil
}
