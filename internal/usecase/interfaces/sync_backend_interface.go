package interfaces

import (
	"context"
	"errors"
)

// ErrRemoteNotFound is returned by Download when the remote side has no
// blob under the sync key yet. Recoverable; the user simply never pushed.
var ErrRemoteNotFound = errors.New("remote backup not found")

// ISyncBackend is the remote blob store contract. Implementations push and
// pull an opaque snapshot document keyed by the user-chosen sync key; they
// perform no validation of the payload and keep no local state.
//
//go:generate mockgen -source=sync_backend_interface.go -destination=mocks/sync_backend_mock.go -package=mocks
type ISyncBackend interface {
	Name() string
	Upload(ctx context.Context, key string, blob []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
}
