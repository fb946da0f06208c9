package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"elysian/config"
	"elysian/infras/jwt"
	"elysian/infras/otel"
	"elysian/internal/domains/auth/model"
	"elysian/internal/domains/auth/model/dto"
	"elysian/internal/domains/auth/repository"
	auditService "elysian/internal/domains/audit/service"
	userModel "elysian/internal/domains/user/model"
	userRepo "elysian/internal/domains/user/repository"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/failure"
	gModel "elysian/shared/model"
	"elysian/shared/password"
	"elysian/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	tokenRepo  repository.RefreshToken
	audit      auditService.Audit
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(
	userRepo userRepo.User,
	tokenRepo repository.RefreshToken,
	audit auditService.Audit,
	cfg *config.Config,
	otel otel.Otel,
	jwtService jwt.JWT,
) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		audit:      audit,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwtService,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    userModel.TableName,
			},
		},
	}
}

// persistRefreshToken stores the hash of a freshly issued refresh token so
// it can later be rotated or revoked.
func (s *serviceImpl) persistRefreshToken(ctx context.Context, userID, token string) error {
	now := timezone.Now()

	return s.tokenRepo.Insert(ctx, model.RefreshToken{ // nolint:wrapcheck
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: model.HashToken(token),
		ExpiresAt: now.Add(time.Duration(s.cfg.JWT.RefreshExpireMin) * time.Minute),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	})
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid username or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid username or password") // nolint:wrapcheck
	}

	if !user.CanLogin() {
		return res, failure.Unauthorized("account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.persistRefreshToken(ctx, user.ID, tokenPair.RefreshToken); err != nil {
		log.Error().Err(err).Msg("failed to persist refresh token")

		return res, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.Username)

	if err := s.userRepo.Update(ctx, updatedFields, usernameFilter(req.Username)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	s.audit.Record(ctx, "login", userModel.TableName, user.ID, nil, nil)

	res.FromTokenPair(tokenPair)

	return res, nil
}

// RefreshToken rotates the presented refresh token: the old one is revoked
// in the same breath the new pair is issued, so a token can be exchanged
// exactly once.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh attempt with invalid token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	hash := model.HashToken(req.RefreshToken)
	hashFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTokenHash,
				Operator: gDto.FilterOperatorEq,
				Value:    hash,
				Table:    model.TableName,
			},
		},
	}

	stored, err := s.tokenRepo.Get(ctx, hashFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get refresh token")

		return res, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if stored.ID == constant.Empty || !stored.Usable(timezone.Now()) {
		log.Warn().Str("user_id", claims.UserID).Msg("refresh attempt with revoked or expired token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	if err := s.tokenRepo.Update(ctx, map[string]any{
		model.FieldRevokedAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: claims.UserID,
	}, hashFilter); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh token")

		return res, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.persistRefreshToken(ctx, claims.UserID, tokenPair.RefreshToken); err != nil {
		log.Error().Err(err).Msg("failed to persist refresh token")

		return res, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout revokes the presented refresh token. The access token simply ages
// out.
func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTokenHash,
				Operator: gDto.FilterOperatorEq,
				Value:    model.HashToken(req.RefreshToken),
				Table:    model.TableName,
			},
		},
	}

	stored, err := s.tokenRepo.Get(ctx, hashFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get refresh token")

		return fmt.Errorf("failed to get refresh token: %w", err)
	}

	if stored.ID == constant.Empty || stored.RevokedAt != nil {
		// Logout is idempotent.
		return nil
	}

	if err := s.tokenRepo.Update(ctx, map[string]any{
		model.FieldRevokedAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: stored.UserID,
	}, hashFilter); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh token")

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// ChangePassword verifies the current password, stores the new hash, and
// revokes every outstanding refresh token of the account.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, user.Username)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh tokens")

		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	s.audit.Record(ctx, "change_password", userModel.TableName, userID, nil, nil)

	return nil
}
