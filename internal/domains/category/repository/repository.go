package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cleanmatch/infras/otel"
	"cleanmatch/infras/postgres"
	"cleanmatch/internal/domains/category/model"
	gDto "cleanmatch/shared/dto"
	gRepo "cleanmatch/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.Category) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Category {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
