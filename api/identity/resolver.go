package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/databases"
)

// ErrIdentityNotFound is returned when a caller cannot be linked to a game license
var ErrIdentityNotFound = errors.New("game identity not found")

// Resolver links tablet accounts to game licenses. A resolved license is
// stored on the account and never looked up again.
type Resolver struct {
	users    databases.UserDatabase
	snapshot *Snapshot
}

// NewResolver returns a resolver backed by the account store and the player registry
func NewResolver(users databases.UserDatabase, snapshot *Snapshot) *Resolver {
	return &Resolver{
		users:    users,
		snapshot: snapshot,
	}
}

// Cached returns the license already stored for the caller
func (r *Resolver) Cached(ctx context.Context, callerID string) (string, error) {
	user, err := r.users.FindOne(ctx, callerID)
	if errors.Is(err, databases.ErrNotFound) {
		return "", ErrIdentityNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find user %s: %w", callerID, err)
	}
	if !user.FiveM.Valid || user.FiveM.String == "" {
		return "", ErrIdentityNotFound
	}
	return user.FiveM.String, nil
}

// Resolve returns the caller's game license, looking it up in the player
// registry through their Discord id on first use
func (r *Resolver) Resolve(ctx context.Context, callerID string) (string, error) {
	user, err := r.users.FindOne(ctx, callerID)
	if errors.Is(err, databases.ErrNotFound) {
		return "", ErrIdentityNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find user %s: %w", callerID, err)
	}
	if user.FiveM.Valid && user.FiveM.String != "" {
		return user.FiveM.String, nil
	}
	if !user.Discord.Valid || user.Discord.String == "" {
		return "", ErrIdentityNotFound
	}

	reg, err := r.snapshot.Load()
	if err != nil {
		return "", err
	}
	player := FindByDiscord(reg, user.Discord.String)
	if player == nil {
		return "", ErrIdentityNotFound
	}

	if err := r.users.SetFiveM(ctx, callerID, player.License); err != nil {
		zap.S().Warnw("could not store game license", "userId", callerID, "error", err)
	}
	return player.License, nil
}
