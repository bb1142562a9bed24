package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
	maxHolidayBody     = 1 << 20
)

// RemoteHolidaySource fetches a JSON holiday list over HTTP.
// The URL may contain a {year} placeholder.
type RemoteHolidaySource struct {
	httpClient  *http.Client
	logger      *zap.Logger
	urlTemplate string
	cache       map[int]*cachedHolidays
	cacheMu     sync.RWMutex
	cacheTTL    time.Duration
}

type cachedHolidays struct {
	data      *HolidaySet
	fetchedAt time.Time
}

// NewRemoteHolidaySource creates a new RemoteHolidaySource instance
func NewRemoteHolidaySource(urlTemplate string, cacheTTL time.Duration, logger *zap.Logger) *RemoteHolidaySource {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &RemoteHolidaySource{
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:      logger,
		urlTemplate: urlTemplate,
		cache:       make(map[int]*cachedHolidays),
		cacheTTL:    cacheTTL,
	}
}

// LoadHolidays returns the cached set for year or downloads it
func (rs *RemoteHolidaySource) LoadHolidays(ctx context.Context, year int) (*HolidaySet, error) {
	rs.cacheMu.RLock()
	if cached, ok := rs.cache[year]; ok {
		if time.Since(cached.fetchedAt) < rs.cacheTTL {
			rs.cacheMu.RUnlock()
			rs.logger.Debug("Using cached holidays", zap.Int("year", year))
			return cached.data, nil
		}
	}
	rs.cacheMu.RUnlock()

	set, err := rs.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	rs.cacheMu.Lock()
	rs.cache[year] = &cachedHolidays{
		data:      set,
		fetchedAt: time.Now(),
	}
	rs.cacheMu.Unlock()

	return set, nil
}

func (rs *RemoteHolidaySource) fetch(ctx context.Context, year int) (*HolidaySet, error) {
	url := strings.ReplaceAll(rs.urlTemplate, "{year}", strconv.Itoa(year))

	rs.logger.Info("Downloading holiday list",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHolidayBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	entries, err := decodeHolidayJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday response: %w", err)
	}

	set := buildHolidaySet(entries, year, rs.logger)

	rs.logger.Info("Holiday list downloaded",
		zap.Int("year", year),
		zap.Int("holidays", set.Len()))

	return set, nil
}

// ClearCache clears the cache
func (rs *RemoteHolidaySource) ClearCache() {
	rs.cacheMu.Lock()
	defer rs.cacheMu.Unlock()

	rs.cache = make(map[int]*cachedHolidays)
	rs.logger.Info("Holiday cache cleared")
}
