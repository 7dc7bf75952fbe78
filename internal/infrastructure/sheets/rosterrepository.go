package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/sheets/v4"

	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
)

const (
	// The roster changes on people-time, not request-time, so a short
	// cache keeps the entry form from hammering the API on every load.
	rosterCacheDuration = 5 * time.Minute
	// Past this age a cached roster is considered too stale to serve as
	// a fallback when a refresh fails.
	rosterMaxCacheAge = time.Hour
)

// RosterRepository reads the staff roster from the first column of its
// own sheet, one name per row under a header.
type RosterRepository struct {
	service       *sheets.Service
	spreadsheetID string
	sheetTitle    string
	clock         biztime.Clock
	logger        logger.Interface

	mu       sync.RWMutex
	cached   []string
	cachedAt time.Time
}

func NewRosterRepository(
	service *sheets.Service,
	spreadsheetID string,
	sheetTitle string,
	clock biztime.Clock,
	logger logger.Interface,
) *RosterRepository {
	return &RosterRepository{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetTitle:    sheetTitle,
		clock:         clock,
		logger:        logger,
	}
}

var _ task.RosterRepository = (*RosterRepository)(nil)

func (r *RosterRepository) ListAssignees(ctx context.Context) ([]string, error) {
	now := r.clock.Now()

	r.mu.RLock()
	if r.cached != nil && now.Sub(r.cachedAt) < rosterCacheDuration {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	names, err := r.fetch(ctx)
	if err != nil {
		r.mu.RLock()
		cacheAge := now.Sub(r.cachedAt)
		if r.cached != nil && cacheAge < rosterMaxCacheAge {
			cached := r.cached
			r.mu.RUnlock()
			r.logger.Warnw("roster refresh failed, serving cached roster",
				"error", err,
				"cache_age", cacheAge,
			)
			return cached, nil
		}
		r.mu.RUnlock()
		return nil, err
	}

	r.mu.Lock()
	r.cached = names
	r.cachedAt = now
	r.mu.Unlock()

	return names, nil
}

func (r *RosterRepository) fetch(ctx context.Context) ([]string, error) {
	readRange := fmt.Sprintf("%s!A%d:A", r.sheetTitle, task.FirstDataRowNumber)
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.NewStoreError("failed to read staff roster", err)
	}

	names := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(cellString(row[0]))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
