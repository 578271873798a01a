package sync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

const pantryBaseURL = "https://getpantry.cloud/apiv1/pantry"

// PantryBackend stores the backup in a getpantry.cloud basket. Pantry has
// no Go SDK; this talks to its REST API directly. The free tier fits a
// small fleet's ledger with room to spare.
type PantryBackend struct {
	pantryID string
	client   *http.Client
	baseURL  string
}

var _ interfaces.ISyncBackend = (*PantryBackend)(nil)

func NewPantryBackend(pantryID string) (*PantryBackend, error) {
	if pantryID == "" {
		return nil, fmt.Errorf("pantry sync requires a pantry id")
	}
	return &PantryBackend{
		pantryID: pantryID,
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  pantryBaseURL,
	}, nil
}

func (b *PantryBackend) Name() string { return "pantry" }

func (b *PantryBackend) basketURL(key string) string {
	return fmt.Sprintf("%s/%s/basket/%s", b.baseURL, b.pantryID, key)
}

// Upload replaces the basket contents. POST overwrites; Pantry's PUT would
// merge keys, which must not happen for deletions to propagate.
func (b *PantryBackend) Upload(ctx context.Context, key string, blob []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.basketURL(key), bytes.NewReader(blob))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading to pantry: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pantry upload failed: %s: %s", resp.Status, body)
	}
	return nil
}

func (b *PantryBackend) Download(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.basketURL(key), nil)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading from pantry: %w", err)
	}
	defer resp.Body.Close()

	// Pantry answers 400 for a basket that was never created.
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, interfaces.ErrRemoteNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pantry download failed: %s: %s", resp.Status, body)
	}
	return io.ReadAll(resp.Body)
}
