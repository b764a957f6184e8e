package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// Disk stores each key as a JSON file under the root folder.
type Disk struct {
	rootPath string
}

func NewDisk(rootPath string) (*Disk, error) {
	if rootPath == "" {
		return nil, errors.New("disk storage root path empty")
	}

	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return nil, fmt.Errorf("check disk storage root: %w", err)
	}
	if !exists {
		log.Debugf("disk storage root [%s] not found, creating", rootPath)
		if err := os.MkdirAll(rootPath, 0o755); err != nil {
			return nil, fmt.Errorf("create disk storage root: %w", err)
		}
	}

	return &Disk{
		rootPath: rootPath,
	}, nil
}

func (d *Disk) RootPath() string {
	return d.rootPath
}

func (d *Disk) filePath(key string) string {
	// namespaced keys contain ':', not a friendly char for file names
	fileName := strings.NewReplacer(":", "__", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(d.rootPath, fileName+".json")
}

func (d *Disk) Load(ctx context.Context, key string) ([]byte, bool, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.disk.load")
	defer span.End()

	if key == "" {
		return nil, false, ErrEmptyKey
	}

	data, err := os.ReadFile(d.filePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read [%s]: %w", key, err)
	}

	return data, true, nil
}

// Save writes to a temp file first and renames it over the old one,
// so a crash mid-write never leaves a truncated file behind.
func (d *Disk) Save(ctx context.Context, key string, value []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.disk.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return ErrEmptyKey
	}

	target := d.filePath(key)
	tmpFile, err := os.CreateTemp(d.rootPath, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for [%s]: %w", key, err)
	}
	tmpName := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmpFile.Write(value); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write [%s]: %w", key, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close [%s]: %w", key, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename [%s]: %w", key, err)
	}

	return nil
}
