package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts the record, resolving conflicts on conflictColumns by
// updating updateColumns. An empty updateColumns means conflicting rows
// are left untouched, so duplicate inserts are benign no-ops.
func (f *PostgresDB) Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error {
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		columns = append(columns, clause.Column{Name: name})
	}

	onConflict := clause.OnConflict{Columns: columns, DoNothing: true}
	if len(updateColumns) > 0 {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.AssignmentColumns(updateColumns)
	}

	err := f.DB.WithContext(ctx).Clauses(onConflict).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy fills entities with every row matching column = value, sorted
// by the order expression when one is given.
func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any, order string) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// CountWhere counts rows of model matching the condition. An empty
// condition counts the whole table.
func (f *PostgresDB) CountWhere(ctx context.Context, model any, condition string, args ...any) (int64, error) {
	var count int64
	tx := f.DB.WithContext(ctx).Model(model)
	if condition != "" {
		tx = tx.Where(condition, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// SumWhere sums a numeric-string column of model over rows matching the
// condition, returning the total as a decimal string ("0" when no rows
// match).
func (f *PostgresDB) SumWhere(ctx context.Context, model any, column string, condition string, args ...any) (string, error) {
	var sum string
	tx := f.DB.WithContext(ctx).Model(model)
	if condition != "" {
		tx = tx.Where(condition, args...)
	}
	err := tx.Select(fmt.Sprintf("COALESCE(SUM(%s::numeric), 0)::text", column)).
		Scan(&sum).Error
	if err != nil {
		return "", fmt.Errorf("sum %q: %w", column, err)
	}
	return sum, nil
}

// BucketCount is one row of a CountByBucket aggregation.
type BucketCount struct {
	Bucket uint64
	Count  int64
}

// CountByBucket groups rows of model matching the condition by the given
// column and counts each group, ordered by the column ascending.
func (f *PostgresDB) CountByBucket(ctx context.Context, model any, column string, condition string, args ...any) ([]BucketCount, error) {
	var buckets []BucketCount
	tx := f.DB.WithContext(ctx).Model(model)
	if condition != "" {
		tx = tx.Where(condition, args...)
	}
	err := tx.Select(fmt.Sprintf("%s AS bucket, count(*) AS count", column)).
		Group(column).
		Order(fmt.Sprintf("%s ASC", column)).
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("count records by %q: %w", column, err)
	}
	return buckets, nil
}

// List fills entities with one page of rows matching the condition,
// ordered by the given order expression.
func (f *PostgresDB) List(ctx context.Context, entities any, order string, limit, offset int, condition string, args ...any) error {
	tx := f.DB.WithContext(ctx)
	if condition != "" {
		tx = tx.Where(condition, args...)
	}
	err := tx.Order(order).Limit(limit).Offset(offset).Find(entities).Error
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	return nil
}

func (f *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
