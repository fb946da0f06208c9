package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elysian/config"
	"elysian/infras/jwt"
	jwtMocks "elysian/infras/jwt/mocks"
	"elysian/infras/otel/mocks"
	auditMocks "elysian/internal/domains/audit/service/mocks"
	"elysian/internal/domains/auth/model"
	"elysian/internal/domains/auth/model/dto"
	authMocks "elysian/internal/domains/auth/repository/mocks"
	"elysian/internal/domains/auth/service"
	userModel "elysian/internal/domains/user/model"
	userMocks "elysian/internal/domains/user/repository/mocks"
	"elysian/shared/failure"
	gModel "elysian/shared/model"
	"elysian/shared/password"
	"elysian/shared/timezone"
)

type authMockSet struct {
	users  *userMocks.MockUser
	tokens *authMocks.MockRefreshToken
	audit  *auditMocks.MockAudit
	jwt    *jwtMocks.MockJWT
}

func newAuthService(ctrl *gomock.Controller) (service.Auth, authMockSet) {
	m := authMockSet{
		users:  userMocks.NewMockUser(ctrl),
		tokens: authMocks.NewMockRefreshToken(ctrl),
		audit:  auditMocks.NewMockAudit(ctrl),
		jwt:    jwtMocks.NewMockJWT(ctrl),
	}

	m.audit.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()

	cfg := &config.Config{}
	cfg.JWT.RefreshExpireMin = 60

	svc := service.New(m.users, m.tokens, m.audit, cfg, mocks.NewOtel(), m.jwt)

	return svc, m
}

func activeStaff(t *testing.T) userModel.User {
	t.Helper()

	hash, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	return userModel.User{
		ID:        "user-1",
		Username:  "frontdesk",
		Password:  hash,
		Role:      "staff",
		Lifecycle: gModel.Lifecycle{Lifecycle: gModel.LifecycleActive},
	}
}

func testTokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	ctx := context.Background()
	staff := activeStaff(t)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "frontdesk", Password: "correct-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
				m.jwt.EXPECT().
					GenerateTokenPair("user-1", "frontdesk", "staff").
					Return(testTokenPair(), nil)
				m.tokens.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				m.users.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", Password: "whatever"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "frontdesk", Password: "wrong-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Username: "frontdesk", Password: "correct-password"},
			setupMock: func() {
				inactive := staff
				inactive.Lifecycle = gModel.Lifecycle{Lifecycle: gModel.LifecycleInactive}

				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "token persistence failure",
			req:  dto.LoginRequest{Username: "frontdesk", Password: "correct-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
				m.jwt.EXPECT().
					GenerateTokenPair("user-1", "frontdesk", "staff").
					Return(testTokenPair(), nil)
				m.tokens.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.Is(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
				assert.Equal(t, "Bearer", res.TokenType)
			}
		})
	}
}

func storedToken(token string) model.RefreshToken {
	return model.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		TokenHash: model.HashToken(token),
		ExpiresAt: timezone.Now().Add(time.Hour),
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	ctx := context.Background()
	req := dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"}
	claims := &jwt.Claims{UserID: "user-1", Username: "frontdesk", Role: "staff", Type: jwt.RefreshToken}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful rotation",
			setupMock: func() {
				m.jwt.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(claims, nil)
				m.tokens.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedToken("old-refresh-token"), nil)
				m.tokens.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.jwt.EXPECT().
					GenerateTokenPair("user-1", "frontdesk", "staff").
					Return(testTokenPair(), nil)
				m.tokens.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid token signature",
			setupMock: func() {
				m.jwt.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(nil, errors.New("token is expired"))
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "token already rotated",
			setupMock: func() {
				revoked := storedToken("old-refresh-token")
				now := timezone.Now()
				revoked.RevokedAt = &now

				m.jwt.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(claims, nil)
				m.tokens.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(revoked, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "token unknown to the store",
			setupMock: func() {
				m.jwt.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(claims, nil)
				m.tokens.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RefreshToken{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.Is(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	ctx := context.Background()
	req := dto.LogoutRequest{RefreshToken: "refresh-token"}

	t.Run("revokes a live token", func(t *testing.T) {
		m.tokens.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedToken("refresh-token"), nil)
		m.tokens.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Logout(ctx, req))
	})

	t.Run("idempotent for an already revoked token", func(t *testing.T) {
		revoked := storedToken("refresh-token")
		now := timezone.Now()
		revoked.RevokedAt = &now

		m.tokens.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(revoked, nil)

		assert.NoError(t, svc.Logout(ctx, req))
	})

	t.Run("idempotent for an unknown token", func(t *testing.T) {
		m.tokens.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RefreshToken{}, nil)

		assert.NoError(t, svc.Logout(ctx, req))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	ctx := context.Background()
	staff := activeStaff(t)

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful change revokes all sessions",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
				m.users.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.tokens.EXPECT().
					RevokeAllForUser(gomock.Any(), "user-1").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "not-it", NewPassword: "brand-new-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func() {
				m.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(ctx, tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.Is(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
