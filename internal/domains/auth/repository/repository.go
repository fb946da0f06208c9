package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"elysian/infras/otel"
	"elysian/infras/postgres"
	"elysian/internal/domains/auth/model"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	"elysian/shared/logger"
	gRepo "elysian/shared/repository"
	"elysian/shared/timezone"
)

type RefreshToken interface {
	Insert(ctx context.Context, model model.RefreshToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RefreshToken, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RefreshToken]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RefreshToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RefreshToken](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RevokeAllForUser kills every live refresh token of a user. Used on
// password change so stolen tokens die with the old password.
func (repo *repositoryImpl) RevokeAllForUser(ctx context.Context, userID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".refresh_token.RevokeAllForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE refresh_tokens SET revoked_at = :now WHERE user_id = :user_id AND revoked_at IS NULL`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement (refresh_token): %w", err)
	}
	defer prepare.Close()

	if _, err = prepare.ExecContext(ctx, map[string]any{
		"now":     timezone.Now(),
		"user_id": userID,
	}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}
