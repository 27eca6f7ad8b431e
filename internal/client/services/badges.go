package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/client/repositories/favorites"
	"github.com/careersync/careersync/internal/client/repositories/metadata"
	"github.com/careersync/careersync/internal/client/repositories/surveys"
	"github.com/careersync/careersync/internal/common"
	"github.com/careersync/careersync/internal/logging"
)

// BadgeService derives the earned badge set from persisted activity. It is
// a stateless query evaluated fresh on every call; earned state is never
// stored. The five source reads are independent: a failing read only costs
// its own badges.
type BadgeService struct {
	surveys   surveys.Repository
	favorites favorites.Repository
	meta      metadata.Repository
	log       logging.Logger
}

func NewBadgeService(s surveys.Repository, f favorites.Repository, m metadata.Repository, log logging.Logger) *BadgeService {
	return &BadgeService{surveys: s, favorites: f, meta: m, log: log}
}

// Earned returns the catalog entries the user currently qualifies for, in
// catalog order. On total failure the result is empty, not an error.
func (b *BadgeService) Earned(ctx context.Context, userID string) []models.Badge {
	earned := make(map[models.BadgeKey]bool)

	surveyCount, err := b.surveys.CountByUser(ctx, userID)
	if err != nil {
		b.log.Warn(ctx, "badge read failed", "source", "surveys", "err", err)
	} else {
		earned[models.BadgeFirstSurvey] = surveyCount >= 1
		earned[models.BadgeFiveSurveys] = surveyCount >= 5
		earned[models.BadgeTenSurveys] = surveyCount >= 10
	}

	streak := b.counter(ctx, common.KeyStreakPrefix+userID, 0)
	earned[models.BadgeStreak3] = streak >= 3
	earned[models.BadgeStreak7] = streak >= 7

	level := b.counter(ctx, common.KeyLevelPrefix+userID, 1)
	earned[models.BadgeLevel5] = level >= 5

	favCount, err := b.favorites.CountByUser(ctx, userID)
	if err != nil {
		b.log.Warn(ctx, "badge read failed", "source", "favorites", "err", err)
	} else {
		earned[models.BadgeFirstFavorite] = favCount >= 1
	}

	avatar, err := b.meta.Get(ctx, common.KeyAvatarPrefix+userID)
	if err != nil {
		b.log.Warn(ctx, "badge read failed", "source", "avatar", "err", err)
	} else {
		earned[models.BadgeProfilePic] = avatar != ""
	}

	var result []models.Badge
	for _, badge := range models.BadgeCatalog {
		if earned[badge.Key] {
			result = append(result, badge)
		}
	}
	return result
}

// counter reads an externally maintained integer slot (login streak,
// level). Absent or malformed values fall back to def.
func (b *BadgeService) counter(ctx context.Context, key string, def int) int {
	raw, err := b.meta.Get(ctx, key)
	if err != nil {
		b.log.Warn(ctx, "badge read failed", "source", key, "err", err)
		return def
	}
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		b.log.Warn(ctx, "malformed counter", "key", key, "value", raw)
		return def
	}
	return n
}
