package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foliogen/foliogen/internal/config"
)

// Store persists uploaded resume originals. Keys are flat file names, the
// resume service owns their format.
type Store interface {
	Type() string
	Save(ctx context.Context, key string, r ReadSeekCloser, size int64) error
	Open(ctx context.Context, key string) (ReadSeekCloser, error)
	Delete(ctx context.Context, key string) error
}

type ReadSeekCloser interface {
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

type Factory func(args interface{}) (Store, error)

// registry is written only from package init functions.
var registry = map[string]Factory{}

func Register(name string, factory Factory) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || factory == nil {
		panic("filestore: invalid registration")
	}
	if _, dup := registry[name]; dup {
		panic("filestore: duplicate store type " + name)
	}
	registry[name] = factory
}

func New(cfg config.FileStoreConfig) (Store, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Type))
	if name == "" {
		return nil, fmt.Errorf("file_store.type is required")
	}
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unsupported file store type: %s", cfg.Type)
	}
	return factory(cfg.Data)
}

// decodeConfig maps the raw JSON config block onto a store-specific struct.
func decodeConfig(args interface{}, dst interface{}) error {
	if args == nil {
		return fmt.Errorf("store config is required")
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode store config: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode store config: %w", err)
	}
	return nil
}
