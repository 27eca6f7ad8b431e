package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/common"
)

func badgeKeys(badges []models.Badge) []models.BadgeKey {
	var keys []models.BadgeKey
	for _, b := range badges {
		keys = append(keys, b.Key)
	}
	return keys
}

func seedSurveys(t *testing.T, repo *memSurveys, userID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Append(context.Background(),
			&models.SurveyRecord{ID: fmt.Sprintf("s%d", i), UserID: userID}))
	}
}

func TestBadgeService_SurveyThresholds(t *testing.T) {
	tests := []struct {
		count int
		want  []models.BadgeKey
	}{
		{0, nil},
		{1, []models.BadgeKey{models.BadgeFirstSurvey}},
		{4, []models.BadgeKey{models.BadgeFirstSurvey}},
		{5, []models.BadgeKey{models.BadgeFirstSurvey, models.BadgeFiveSurveys}},
		{9, []models.BadgeKey{models.BadgeFirstSurvey, models.BadgeFiveSurveys}},
		{10, []models.BadgeKey{models.BadgeFirstSurvey, models.BadgeFiveSurveys, models.BadgeTenSurveys}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d surveys", tt.count), func(t *testing.T) {
			repo := &memSurveys{}
			seedSurveys(t, repo, "alice", tt.count)
			svc := NewBadgeService(repo, &memFavorites{}, newMemMeta(), testLogger())

			got := svc.Earned(context.Background(), "alice")
			assert.Equal(t, tt.want, badgeKeys(got))
		})
	}
}

func TestBadgeService_StreakAndLevel(t *testing.T) {
	ctx := context.Background()
	meta := newMemMeta()
	svc := NewBadgeService(&memSurveys{}, &memFavorites{}, meta, testLogger())

	require.NoError(t, meta.Set(ctx, common.KeyStreakPrefix+"alice", "3"))
	assert.Equal(t, []models.BadgeKey{models.BadgeStreak3}, badgeKeys(svc.Earned(ctx, "alice")))

	require.NoError(t, meta.Set(ctx, common.KeyStreakPrefix+"alice", "7"))
	assert.Equal(t, []models.BadgeKey{models.BadgeStreak3, models.BadgeStreak7}, badgeKeys(svc.Earned(ctx, "alice")))

	require.NoError(t, meta.Set(ctx, common.KeyLevelPrefix+"alice", "5"))
	assert.Contains(t, badgeKeys(svc.Earned(ctx, "alice")), models.BadgeLevel5)

	// Counters are per user.
	assert.Empty(t, svc.Earned(ctx, "bob"))
}

func TestBadgeService_MalformedCounterFallsBack(t *testing.T) {
	ctx := context.Background()
	meta := newMemMeta()
	require.NoError(t, meta.Set(ctx, common.KeyStreakPrefix+"alice", "lots"))
	require.NoError(t, meta.Set(ctx, common.KeyLevelPrefix+"alice", "9999999999999999999999"))

	svc := NewBadgeService(&memSurveys{}, &memFavorites{}, meta, testLogger())
	assert.Empty(t, svc.Earned(ctx, "alice"))
}

func TestBadgeService_FavoriteAndAvatar(t *testing.T) {
	ctx := context.Background()
	meta := newMemMeta()
	favs := &memFavorites{}
	svc := NewBadgeService(&memSurveys{}, favs, meta, testLogger())

	_, err := favs.Toggle(ctx, "alice", "Data Scientist")
	require.NoError(t, err)
	require.NoError(t, meta.Set(ctx, common.KeyAvatarPrefix+"alice", "data:image/png;base64,AAAA"))

	assert.Equal(t,
		[]models.BadgeKey{models.BadgeFirstFavorite, models.BadgeProfilePic},
		badgeKeys(svc.Earned(ctx, "alice")))
}

func TestBadgeService_FailingSourceOnlyCostsItsOwnBadges(t *testing.T) {
	ctx := context.Background()
	meta := newMemMeta()
	require.NoError(t, meta.Set(ctx, common.KeyStreakPrefix+"alice", "3"))

	surveyRepo := &memSurveys{err: errors.New("corrupt")}
	svc := NewBadgeService(surveyRepo, &memFavorites{}, meta, testLogger())

	assert.Equal(t, []models.BadgeKey{models.BadgeStreak3}, badgeKeys(svc.Earned(ctx, "alice")))
}

func TestBadgeCatalogOrderIsStable(t *testing.T) {
	require.Len(t, models.BadgeCatalog, 8)
	assert.Equal(t, models.BadgeFirstSurvey, models.BadgeCatalog[0].Key)
	assert.Equal(t, models.BadgeProfilePic, models.BadgeCatalog[len(models.BadgeCatalog)-1].Key)
}
