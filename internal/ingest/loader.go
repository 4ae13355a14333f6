package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
	"github.com/preston-bernstein/lineup-service/internal/logging"
)

// CombinedFile, when present in the data directory, is the only file read.
const CombinedFile = "all-players.json"

var (
	// ErrSourceUnavailable wraps failures to reach the data directory itself.
	ErrSourceUnavailable = errors.New("player source unavailable")
	// ErrUnreadableFile wraps a player file that cannot be opened or decoded.
	ErrUnreadableFile = errors.New("unreadable player file")
)

// FileReport summarizes one decoded file.
type FileReport struct {
	Name    string `json:"name"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
}

// Batch is the outcome of one load: the players in file order plus what was dropped.
type Batch struct {
	Players []players.Player
	Files   []FileReport
	Skipped int
}

// Loader reads scraped player files from a directory.
type Loader struct {
	Dir    string
	Logger *slog.Logger
}

// NewLoader constructs a Loader rooted at dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{Dir: dir, Logger: logger}
}

// Load decodes every player file. Bad entries are logged and skipped; an
// unreadable directory or file fails the whole load.
func (l *Loader) Load(ctx context.Context) (Batch, error) {
	if l == nil || l.Dir == "" {
		return Batch{}, fmt.Errorf("%w: data directory not configured", ErrSourceUnavailable)
	}
	logger := logging.FromContext(ctx, l.Logger)

	files, err := l.files()
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	batch := Batch{Players: make([]players.Player, 0)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return Batch{}, err
		}
		report, err := l.loadFile(path, &batch, logger)
		if err != nil {
			return Batch{}, err
		}
		batch.Files = append(batch.Files, report)
		batch.Skipped += report.Skipped
	}

	logging.Info(logger, "player corpus loaded",
		logging.FieldCount, len(batch.Players),
		logging.FieldSkipped, batch.Skipped,
		"files", len(batch.Files),
	)
	return batch, nil
}

// files lists what to read: the combined file alone when it exists,
// otherwise every *.json in name order.
func (l *Loader) files() ([]string, error) {
	info, err := os.Stat(l.Dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", l.Dir)
	}

	combined := filepath.Join(l.Dir, CombinedFile)
	if fi, err := os.Stat(combined); err == nil && !fi.IsDir() {
		return []string{combined}, nil
	}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		out = append(out, filepath.Join(l.Dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func (l *Loader) loadFile(path string, batch *Batch, logger *slog.Logger) (FileReport, error) {
	report := FileReport{Name: filepath.Base(path)}

	doc, err := decodeFile(path)
	if err != nil {
		logging.Error(logger, "unreadable player file", err, logging.FieldFile, report.Name)
		return report, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, report.Name, err)
	}

	for i, raw := range doc.Players {
		p, err := decodeEntry(raw)
		if err != nil {
			report.Skipped++
			logging.Warn(logger, "skipping player entry",
				logging.FieldFile, report.Name,
				"index", i,
				"error", err,
			)
			continue
		}
		batch.Players = append(batch.Players, p)
		report.Loaded++
	}

	logging.Info(logger, "loaded player file",
		logging.FieldFile, report.Name,
		logging.FieldCount, report.Loaded,
		logging.FieldSkipped, report.Skipped,
	)
	return report, nil
}

func decodeFile(path string) (document, error) {
	f, err := os.Open(path)
	if err != nil {
		return document{}, err
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return document{}, err
	}
	return doc, nil
}
