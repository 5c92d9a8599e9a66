package parser

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anomredux/timerail/internal/domain"
)

// Files returns every .jsonl file under dataDir.
func Files(dataDir string) []string {
	var paths []string
	_ = filepath.Walk(dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".jsonl" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths
}

// ScanAndParse walks the data directory, parses all .jsonl files,
// and returns the combined transactions. It stops early when ctx is done.
func ScanAndParse(ctx context.Context, dataDir string, tz *time.Location) []domain.Transaction {
	log := slog.Default().With("component", "parser")
	paths := Files(dataDir)

	all := make([]domain.Transaction, 0, len(paths)*50)
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		f, err := os.Open(path)
		if err != nil {
			log.Warn("open failed", "path", path, "err", err)
			continue
		}

		result := ParseReader(f, path, tz)
		f.Close()
		if result.ErrorCount > 0 {
			log.Warn("malformed lines", "path", path, "errors", result.ErrorCount)
		}
		all = append(all, result.Entries...)
	}

	log.Debug("scan complete", "files", len(paths), "transactions", len(all))
	return all
}
