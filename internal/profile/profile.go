// Package profile defines user profiles, each owning its own schedule.
package profile

import (
	"context"
	"errors"
)

// Validation and domain errors.
var (
	ErrEmptyName       = errors.New("profile name cannot be empty")
	ErrInvalidTheme    = errors.New("invalid theme tag")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileLimit    = errors.New("profile limit reached")
	ErrLastProfile     = errors.New("cannot delete the last profile")
)

// MaxProfiles is the maximum number of profiles.
const MaxProfiles = 5

// Emojis lists the avatar choices offered when creating a profile.
var Emojis = []string{"👤", "😊", "🎓", "📚", "🎯", "⭐", "🚀", "💡", "🎨", "🎵", "⚡", "🌟"}

// Themes lists the profile theme tags.
var Themes = []string{"classic", "ocean", "sunset", "forest", "berry", "dark", "gold", "fire"}

// DefaultTheme is used when a profile has no theme set.
const DefaultTheme = "classic"

// Profile represents one user of the schedule.
type Profile struct {
	ID    int64
	Name  string
	Emoji string
	Theme string
}

// New creates a profile with validation.
func New(name, emoji, theme string) (*Profile, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if emoji == "" {
		emoji = Emojis[0]
	}
	if theme == "" {
		theme = DefaultTheme
	}
	if !ValidTheme(theme) {
		return nil, ErrInvalidTheme
	}
	return &Profile{Name: name, Emoji: emoji, Theme: theme}, nil
}

// ValidTheme returns true if the theme tag is known.
func ValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Repository defines the storage interface for profiles.
type Repository interface {
	// CreateProfile adds a new profile and assigns its ID.
	// Returns ErrProfileLimit when MaxProfiles already exist.
	CreateProfile(ctx context.Context, p *Profile) error

	// GetProfile retrieves a profile by ID. Returns nil if not found.
	GetProfile(ctx context.Context, id int64) (*Profile, error)

	// ListProfiles returns all profiles in creation order.
	ListProfiles(ctx context.Context) ([]*Profile, error)

	// UpdateProfile replaces a profile's editable fields.
	UpdateProfile(ctx context.Context, p *Profile) error

	// DeleteProfile removes a profile and its sessions.
	// Returns ErrLastProfile when it is the only profile left.
	DeleteProfile(ctx context.Context, id int64) error
}
