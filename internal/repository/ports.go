package repository

import (
	"context"

	"bscout/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any, order string) error
	CountWhere(ctx context.Context, model any, condition string, args ...any) (int64, error)
	SumWhere(ctx context.Context, model any, column string, condition string, args ...any) (string, error)
	CountByBucket(ctx context.Context, model any, column string, condition string, args ...any) ([]db.BucketCount, error)
	List(ctx context.Context, entities any, order string, limit, offset int, condition string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}
