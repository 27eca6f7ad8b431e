package common

import "time"

// SessionTimeout is the fixed window after which an authenticated session
// expires. The timer is armed once per token assignment and is not renewed
// on activity.
const SessionTimeout = 30 * time.Minute

// Metadata keys shared between services and presenters. Per-user slots are
// built with the *Prefix constants plus the user id.
const (
	KeyToken    = "token"
	KeyDarkMode = "darkMode"
	KeyProfile  = "profile"

	KeyAvatarPrefix    = "avatar_"
	KeyStreakPrefix    = "loginStreak_"
	KeyLevelPrefix     = "level_"
	KeyLastLoginPrefix = "lastLogin_"
)
