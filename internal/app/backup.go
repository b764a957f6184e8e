package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// Backuper snapshots every persisted key into a tar.gz archive. It only reads.
type Backuper struct {
	provider       storage.Provider
	dir            string
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewBackuper(provider storage.Provider, dir string, metricsManager *metrics.Manager) *Backuper {
	return &Backuper{
		provider:       provider,
		dir:            dir,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Run writes one archive and returns its path.
func (b *Backuper) Run(ctx context.Context) (archivePath string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		if b.metricsManager != nil {
			result := "ok"
			if err != nil {
				result = "error"
			}
			b.metricsManager.CounterBackups.WithLabelValues(result).Inc()
		}
	}()

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	var files []pkg.ArchiveFile
	for _, key := range storage.AllKeys {
		value, found, err := b.provider.Load(ctx, key)
		if err != nil {
			return "", fmt.Errorf("load [%s]: %w", key, err)
		}
		if !found {
			continue
		}
		files = append(files, pkg.ArchiveFile{Name: key + ".json", Data: value})
	}

	now := b.now().UTC()
	archivePath = filepath.Join(b.dir, fmt.Sprintf("fittrack-%s.tar.gz", now.Format("20060102T150405")))
	archive, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	if err := pkg.CompressFiles(archive, now, files...); err != nil {
		_ = archive.Close()
		return "", fmt.Errorf("compress: %w", err)
	}
	if err := archive.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}

	return archivePath, nil
}

// Schedule runs the backup on the cron spec (with seconds, e.g. "0 30 3 * * *")
// until the returned stop func is called.
func (b *Backuper) Schedule(ctx context.Context, spec string) (stop func(), err error) {
	c := cron.New()
	err = c.AddFunc(spec, func() {
		path, err := b.Run(ctx)
		if err != nil {
			log.Errorf("scheduled backup failed: %s", err)
			return
		}
		log.Infof("backup written: %s", path)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup cron spec [%s]: %w", spec, err)
	}

	c.Start()
	log.Debugf("backups scheduled [%s] into [%s]", spec, b.dir)
	return c.Stop, nil
}
