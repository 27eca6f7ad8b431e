package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/client/repositories/metadata"
	"github.com/careersync/careersync/internal/common"
	"github.com/careersync/careersync/internal/logging"
)

// ProfileService manages the locally stored profile record, the avatar
// slot and the persisted preference flags. Saves are optimistic and local
// only; no server round-trip exists for profile data.
type ProfileService struct {
	meta metadata.Repository
	log  logging.Logger
}

func NewProfileService(meta metadata.Repository, log logging.Logger) *ProfileService {
	return &ProfileService{meta: meta, log: log}
}

// Load returns the stored profile when it belongs to userID, otherwise a
// fresh record for that user. A malformed stored value reads as the
// default, never as an error.
func (p *ProfileService) Load(ctx context.Context, userID string) models.Profile {
	fallback := models.NewProfile(userID)

	raw, err := p.meta.Get(ctx, common.KeyProfile)
	if err != nil || raw == "" {
		if err != nil {
			p.log.Warn(ctx, "could not read profile", "err", err)
		}
		return fallback
	}

	var stored models.Profile
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		p.log.Warn(ctx, "malformed stored profile", "err", err)
		return fallback
	}
	// The profile slot is shared; only trust it for the matching user.
	if stored.Username != userID {
		return fallback
	}
	return stored
}

// Save validates and persists the profile into the shared slot.
func (p *ProfileService) Save(ctx context.Context, profile models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return p.meta.Set(ctx, common.KeyProfile, string(raw))
}

// SetAvatar reads an image file and stores it as an embedded data URI in
// the user's avatar slot. The mime type comes from the file extension; as
// in the original, nothing beyond the image/* filter is enforced.
func (p *ProfileService) SetAvatar(ctx context.Context, userID, path string) error {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("%s is not an image file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return p.meta.Set(ctx, common.KeyAvatarPrefix+userID, uri)
}

// HasAvatar reports whether the user's avatar slot is populated.
func (p *ProfileService) HasAvatar(ctx context.Context, userID string) bool {
	raw, err := p.meta.Get(ctx, common.KeyAvatarPrefix+userID)
	if err != nil {
		p.log.Warn(ctx, "could not read avatar", "err", err)
		return false
	}
	return raw != ""
}

// DarkMode reports the persisted dark-mode preference.
func (p *ProfileService) DarkMode(ctx context.Context) bool {
	raw, err := p.meta.Get(ctx, common.KeyDarkMode)
	if err != nil {
		return false
	}
	return raw == "true"
}

// ToggleDarkMode flips and persists the dark-mode preference, returning the
// new value.
func (p *ProfileService) ToggleDarkMode(ctx context.Context) bool {
	next := !p.DarkMode(ctx)
	if err := p.meta.Set(ctx, common.KeyDarkMode, strconv.FormatBool(next)); err != nil {
		p.log.Warn(ctx, "could not persist dark mode", "err", err)
	}
	return next
}
