package surveys

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/dbx"
)

// SQLiteRepository implements Repository. List-valued fields (skills,
// interests, careers) are stored as JSON text; a malformed stored value
// decodes to the zero value instead of failing the whole read.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec *models.SurveyRecord) error {
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	interests, err := json.Marshal(rec.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}
	careers, err := json.Marshal(rec.Careers)
	if err != nil {
		return fmt.Errorf("encode careers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO surveys (id, user_id, date, skills, education, interests, personality, goals, careers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Date, string(skills), rec.Education,
		string(interests), rec.Personality, rec.Goals, string(careers))
	if err != nil {
		return fmt.Errorf("failed to insert survey record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.SurveyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, skills, education, interests, personality, goals, careers
		FROM surveys WHERE user_id = ? ORDER BY rowid
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select survey records: %w", err)
	}
	defer rows.Close()

	var result []models.SurveyRecord
	for rows.Next() {
		var rec models.SurveyRecord
		var skills, interests, careers string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &skills, &rec.Education,
			&interests, &rec.Personality, &rec.Goals, &careers); err != nil {
			return nil, err
		}
		// Tolerate malformed stored lists; the record still renders.
		_ = json.Unmarshal([]byte(skills), &rec.Skills)
		_ = json.Unmarshal([]byte(interests), &rec.Interests)
		_ = json.Unmarshal([]byte(careers), &rec.Careers)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM surveys WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count survey records: %w", err)
	}
	return count, nil
}
