package diskv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"social-arch/internal/repository"
	pkgLog "social-arch/pkg/log"
)

const cacheSizeMax = 1024 * 1024 // 1MB

type implRepository struct {
	d *diskv.Diskv
	l pkgLog.Logger
}

// New opens a diskv store rooted at basePath. Writes go through a temp dir
// and are renamed into place, so a record is either fully old or fully new.
func New(basePath string, l pkgLog.Logger) (repository.Repository, error) {
	tempDir := filepath.Join(basePath, ".tmp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("diskv repository: ensure base path: %w", err)
	}

	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      tempDir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
	})

	return &implRepository{d: d, l: l}, nil
}

func (r *implRepository) Load(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return repository.ErrInvalidKey
	}
	if !r.d.Has(key) {
		return repository.ErrNotFound
	}

	raw, err := r.d.Read(key)
	if err != nil {
		r.l.Errorf(ctx, "diskv repository: read %s: %v", key, err)
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return repository.ErrInvalidKey
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.d.Write(key, raw); err != nil {
		r.l.Errorf(ctx, "diskv repository: write %s: %v", key, err)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (r *implRepository) Close() error {
	return nil
}
