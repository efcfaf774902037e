// Package tokenstore persists the authenticated session's bearer token
// between runs. Only the token is stored; the profile is always
// refetched from the course service on restore.
package tokenstore

import "context"

type Blob struct {
	Token string `json:"token"`
}

type Store interface {
	// Load reads the persisted blob. ok is false when nothing is stored
	// or the stored blob is structurally invalid.
	Load(ctx context.Context) (blob Blob, ok bool)
	Save(ctx context.Context, blob Blob) error
	Clear(ctx context.Context)
}
