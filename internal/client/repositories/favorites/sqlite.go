package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Toggle(ctx context.Context, userID, career string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND career = ?`, userID, career)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, career) VALUES (?, ?)`, userID, career)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteMark, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, career FROM favorites WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	defer rows.Close()

	var result []models.FavoriteMark
	for rows.Next() {
		var m models.FavoriteMark
		if err := rows.Scan(&m.UserID, &m.Career); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) IsFavorite(ctx context.Context, userID, career string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE user_id = ? AND career = ?`, userID, career).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}
