package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"palpite/internal/common"
	"palpite/internal/model"
)

// GetCategories returns all active categories in name order.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, icon, color, is_active, created_at
		FROM categories
		WHERE is_active = 1
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.Name, &cat.Icon, &cat.Color, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by its name, or ErrNotFound.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var cat model.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT name, icon, color, is_active, created_at
		FROM categories
		WHERE name = ?`, name).Scan(
		&cat.Name, &cat.Icon, &cat.Color, &cat.IsActive, &cat.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// CreateCategory adds a new category to the registry.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, icon, color string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO categories (name, icon, color, is_active)
		VALUES (?, ?, ?, 1)`, name, icon, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check insert result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("category %q: %w", name, common.ErrDuplicateEntry)
	}

	slog.Info("created category", "name", name)
	return s.GetCategoryByName(ctx, name)
}

// DisableCategory hides a category from the registry without deleting
// the pattern history that references it.
func (s *SQLiteStorage) DisableCategory(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET is_active = 0 WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to disable category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q: %w", name, common.ErrNotFound)
	}

	slog.Info("disabled category", "name", name)
	return nil
}
