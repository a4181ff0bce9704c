package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"wearecars/infras/otel"
	"wearecars/infras/postgres"
	"wearecars/internal/domains/booking/model"
	gDto "wearecars/shared/dto"
	gRepo "wearecars/shared/repository"
)

// Booking persists confirmed rentals. Rows are append-only: there is no
// update or delete once a booking has been confirmed.
type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumTotalPrice(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) SumTotalPrice(ctx context.Context, filter gDto.FilterGroup) (int64, error) {
	return repo.SumInt64(ctx, model.FieldTotalPrice, filter) //nolint:wrapcheck
}
