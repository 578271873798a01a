package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// New builds the key/value store for the configured driver. The sqlite
// driver stores everything in <dir>/frotafin.db; file keeps one JSON
// document per key under dir.
func New(driver, dir string) (interfaces.IKeyValueStore, error) {
	switch driver {
	case "", "file":
		return NewFileStore(dir)
	case "sqlite":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
		return NewSQLiteStore(filepath.Join(dir, "frotafin.db"))
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown data driver %q", driver)
}
