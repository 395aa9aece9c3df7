// Package file provides a JSON-file implementation of the milestone source
// port. The file holds a flat array of dated markers maintained by hand or
// by an export script; the source re-reads it when it changes on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.MilestoneSource  = (*Source)(nil)
	_ driven.MilestoneWatcher = (*Source)(nil)
)

// dateLayout is the calendar-date format used in milestone files.
const dateLayout = "2006-01-02"

// entry is the on-disk shape of one milestone.
type entry struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description"`
}

// Source reads milestones from a JSON file. The parsed result is cached and
// invalidated by file modification time, so repeated timeline projections do
// not re-read an unchanged file.
type Source struct {
	path string

	mu       sync.RWMutex
	cached   []domain.Milestone
	cachedAt time.Time
	loaded   bool
}

// NewSource creates a milestone source for the given file path.
// The file does not need to exist yet; a missing file reads as no milestones.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the milestone file path.
func (s *Source) Path() string {
	return s.path
}

// Milestones returns the milestones from the file, sorted by date.
// A missing file is not an error. An unreadable or malformed file is, and
// wraps domain.ErrMilestonesUnavailable.
func (s *Source) Milestones(_ context.Context) ([]domain.Milestone, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrMilestonesUnavailable, s.path, err)
	}

	s.mu.RLock()
	if s.loaded && info.ModTime().Equal(s.cachedAt) {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	milestones, err := s.load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = milestones
	s.cachedAt = info.ModTime()
	s.loaded = true
	s.mu.Unlock()

	return milestones, nil
}

// load reads and parses the milestone file.
func (s *Source) load() ([]domain.Milestone, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrMilestonesUnavailable, s.path, err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrMilestonesUnavailable, s.path, err)
	}

	milestones := make([]domain.Milestone, 0, len(entries))
	for i, e := range entries {
		date, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			logger.Warn("milestones: entry %d has unparseable date %q, skipping", i, e.Date)
			continue
		}

		id := e.ID
		if id == "" {
			// Stable ids matter for click-to-navigate; generate one for
			// hand-edited entries that omit it.
			id = uuid.NewString()
		}

		milestones = append(milestones, domain.Milestone{
			ID:          id,
			Date:        date,
			Color:       resolveColor(e.Color),
			Description: e.Description,
		})
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date.Before(milestones[j].Date)
	})
	return milestones, nil
}

// resolveColor accepts either a display colour name ("purple") or a raw
// colour value ("#A855F7"); anything unrecognised falls back to Neutral.
func resolveColor(value string) palette.ColorID {
	if value == "" {
		return palette.Neutral
	}
	if id := palette.ColorID(value); id.IsValid() {
		return id
	}
	return palette.Classify(value)
}

// Watch re-reads the milestone file whenever it changes and sends the fresh
// milestone list on the returned channel. The watcher stops when ctx is
// cancelled. The containing directory is watched rather than the file so
// atomic save-and-rename editors are picked up.
func (s *Source) Watch(ctx context.Context) (<-chan []domain.Milestone, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	updates := make(chan []domain.Milestone)
	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.relevant(event) {
					continue
				}
				milestones, err := s.Milestones(ctx)
				if err != nil {
					logger.Warn("milestones: reload after %s failed: %v", event.Op, err)
					continue
				}
				select {
				case updates <- milestones:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("milestones: watcher error: %v", err)
			}
		}
	}()

	return updates, nil
}

// relevant reports whether a filesystem event concerns the milestone file.
func (s *Source) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}
