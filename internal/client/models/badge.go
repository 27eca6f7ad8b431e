package models

// BadgeKey names one entry of the achievement catalog.
type BadgeKey string

const (
	BadgeFirstSurvey   BadgeKey = "first_survey"
	BadgeFiveSurveys   BadgeKey = "five_surveys"
	BadgeTenSurveys    BadgeKey = "ten_surveys"
	BadgeStreak3       BadgeKey = "streak_3"
	BadgeStreak7       BadgeKey = "streak_7"
	BadgeLevel5        BadgeKey = "level_5"
	BadgeFirstFavorite BadgeKey = "first_favorite"
	BadgeProfilePic    BadgeKey = "profile_pic"
)

// Badge is a static catalog entry. Earned state is derived, never stored.
type Badge struct {
	Key         BadgeKey
	Label       string
	Icon        string
	Description string
}

// BadgeCatalog lists every badge in display order.
var BadgeCatalog = []Badge{
	{Key: BadgeFirstSurvey, Label: "First Survey", Icon: "🎉", Description: "Completed your first career survey!"},
	{Key: BadgeFiveSurveys, Label: "Survey Pro", Icon: "🏅", Description: "Completed 5 career surveys."},
	{Key: BadgeTenSurveys, Label: "Survey Master", Icon: "🥇", Description: "Completed 10 career surveys."},
	{Key: BadgeStreak3, Label: "3-Day Streak", Icon: "🔥", Description: "Logged in 3 days in a row."},
	{Key: BadgeStreak7, Label: "7-Day Streak", Icon: "💯", Description: "Logged in 7 days in a row."},
	{Key: BadgeLevel5, Label: "Level 5", Icon: "🚀", Description: "Reached Level 5 engagement."},
	{Key: BadgeFirstFavorite, Label: "First Favorite", Icon: "⭐", Description: "Saved your first favorite career."},
	{Key: BadgeProfilePic, Label: "Profile Pic", Icon: "🖼️", Description: "Uploaded a profile picture."},
}

// FavoriteMark is a user's saved-career bookmark. The (UserID, Career) pair
// is unique within the favorites set.
type FavoriteMark struct {
	UserID string
	Career string
}
