// Package credentials persists the signed-in user's token and profile across
// process restarts. Both values live or die together: Save writes them as one
// unit, Clear removes them as one unit, and Load treats a partial or
// unparseable record as absent.
package credentials

import (
	"context"

	"github.com/fittlens/fittlens-cli/internal/client/models"
)

// Record is a complete persisted session: an opaque bearer token and the
// profile it was issued for.
type Record struct {
	Token   string
	Profile models.UserProfile
}

type Repository interface {
	// Save stores the token and profile. Either both entries are written or
	// an error is returned.
	Save(ctx context.Context, token string, profile models.UserProfile) error

	// Load returns the persisted record, or (nil, nil) when no complete
	// well-formed record exists. Storage I/O failures are returned as errors.
	Load(ctx context.Context) (*Record, error)

	// Clear removes any persisted record. Clearing an absent record is not
	// an error.
	Clear(ctx context.Context) error
}
