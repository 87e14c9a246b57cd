package ctxkeys

import (
	"context"

	"github.com/marwanbukhori/commit-life/internal/config"
	"github.com/marwanbukhori/commit-life/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey     contextKey = "user"
	ConfigKey   contextKey = "config"
	LocationKey contextKey = "location"
)

// User is the authenticated user for the request, validated once at the auth
// middleware boundary. Nil when unauthenticated.
func User(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey).(*model.User)
	return user
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// Location is the caller's IANA timezone, parsed from the X-Timezone header.
// Empty string means UTC.
func Location(ctx context.Context) string {
	loc, _ := ctx.Value(LocationKey).(string)
	return loc
}

func WithLocation(ctx context.Context, loc string) context.Context {
	return context.WithValue(ctx, LocationKey, loc)
}
