package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the shared slice of gorm plumbing every DAO embeds.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, row *T) error {
	return r.Db.WithContext(ctx).Create(row).Error
}

// FindOne returns (nil, nil) when no row matches.
func (r Repo[T]) FindOne(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var row T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r Repo[T]) FindAll(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	var rows []T
	err := r.Db.WithContext(ctx).Where(query, args...).Find(&rows).Error
	return rows, err
}
