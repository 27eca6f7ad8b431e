package services

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/careersync/careersync/internal/client/repositories/metadata"
	"github.com/careersync/careersync/internal/common"
	"github.com/careersync/careersync/internal/dbx"
	"github.com/careersync/careersync/internal/logging"
)

// dayLayout keys the once-per-day streak bookkeeping.
const dayLayout = "2006-01-02"

// ProgressService maintains the per-user engagement counters the badge
// engine reads: the consecutive-day login streak and the last-login date.
// Both slots are updated in one transaction so a crash between the writes
// can never desynchronize them.
type ProgressService struct {
	db  *sql.DB
	log logging.Logger

	now func() time.Time // test seam
}

func NewProgressService(db *sql.DB, log logging.Logger) *ProgressService {
	return &ProgressService{db: db, log: log, now: time.Now}
}

// RecordLogin advances the user's login streak: a login the day after the
// previous one extends the streak, a repeat login on the same day keeps it,
// and any gap resets it to 1. The new streak length is returned.
func (p *ProgressService) RecordLogin(ctx context.Context, userID string) (int, error) {
	today := p.now().Format(dayLayout)
	yesterday := p.now().AddDate(0, 0, -1).Format(dayLayout)

	var streak int
	err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadata.NewSQLiteRepository(tx)

		last, err := meta.Get(ctx, common.KeyLastLoginPrefix+userID)
		if err != nil {
			return err
		}
		current := 0
		if raw, err := meta.Get(ctx, common.KeyStreakPrefix+userID); err == nil && raw != "" {
			current, _ = strconv.Atoi(raw)
		}

		switch last {
		case today:
			streak = current
			if streak < 1 {
				streak = 1
			}
		case yesterday:
			streak = current + 1
		default:
			streak = 1
		}

		if err := meta.Set(ctx, common.KeyStreakPrefix+userID, strconv.Itoa(streak)); err != nil {
			return err
		}
		return meta.Set(ctx, common.KeyLastLoginPrefix+userID, today)
	})
	if err != nil {
		return 0, err
	}
	return streak, nil
}

// Streak reads the stored streak length without changing it.
func (p *ProgressService) Streak(ctx context.Context, userID string) int {
	meta := metadata.NewSQLiteRepository(p.db)
	raw, err := meta.Get(ctx, common.KeyStreakPrefix+userID)
	if err != nil {
		p.log.Warn(ctx, "could not read streak", "err", err)
		return 0
	}
	n, _ := strconv.Atoi(raw)
	return n
}
