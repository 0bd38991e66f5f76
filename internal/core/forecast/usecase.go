package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/validation"
	"golang.org/x/sync/singleflight"
)

// ForecastSource downloads a fresh forecast for a coordinate.
type ForecastSource interface {
	FetchForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error)
}

// CitySearcher resolves a free-text query to matching cities.
type CitySearcher interface {
	SearchCities(ctx context.Context, query string) ([]City, error)
}

// GetForecastParams selects a coordinate and the refresh policy. The zero
// value of the flags refreshes only stale entries.
type GetForecastParams struct {
	Dir         string
	Latitude    float64
	Longitude   float64
	ForceUpdate bool
	// CacheOnly serves whatever is cached without a refresh. A missing
	// entry is still downloaded.
	CacheOnly bool
}

// Validate checks the cache directory and the coordinate range.
func (p GetForecastParams) Validate() error {
	if p.Dir == "" {
		return errors.NewValidationError("cache dir is required")
	}
	if !validation.IsValidLatitude(p.Latitude) {
		return errors.NewValidationError(fmt.Sprintf("latitude %v is out of range", p.Latitude))
	}
	if !validation.IsValidLongitude(p.Longitude) {
		return errors.NewValidationError(fmt.Sprintf("longitude %v is out of range", p.Longitude))
	}
	return nil
}

type UseCase struct {
	source     ForecastSource
	store      ports.DocumentStore
	logger     ports.Logger
	metrics    ports.ForecastMetrics
	location   *time.Location
	staleAfter time.Duration
	now        func() time.Time

	refreshes singleflight.Group
	locks     sync.Map
}

type UseCaseDependencies struct {
	Source  ForecastSource
	Store   ports.DocumentStore
	Logger  ports.Logger
	Metrics ports.ForecastMetrics
	// Location of all returned times. Defaults to time.Local.
	Location *time.Location
	// StaleAfter defaults to DefaultStaleAfter.
	StaleAfter time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Source == nil {
		return nil, errors.NewValidationError("forecast source is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("document store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	uc := &UseCase{
		source:     deps.Source,
		store:      deps.Store,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		location:   deps.Location,
		staleAfter: deps.StaleAfter,
		now:        deps.Now,
	}
	if uc.location == nil {
		uc.location = time.Local
	}
	if uc.staleAfter <= 0 {
		uc.staleAfter = DefaultStaleAfter
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// GetForecast returns the forecast of the coordinate bucket, downloading it
// on a miss and refreshing it when stale or forced unless CacheOnly is set.
func (uc *UseCase) GetForecast(ctx context.Context, params GetForecastParams) (*Forecast, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { uc.metrics.RecordOperation("get_forecast", time.Since(start)) }()

	key := CacheKey(params.Latitude, params.Longitude)
	doc, err := uc.readDocument(ctx, params.Dir)
	if err != nil {
		return nil, err
	}

	raw, ok := doc[key]
	if !ok {
		uc.logger.Debug("Forecast cache miss", ports.F("dir", params.Dir), ports.F("key", key))
		uc.metrics.RecordLookup(ports.LookupMiss)
		return uc.refresh(ctx, params, key)
	}

	cached, err := DecodeForecast(raw, uc.location)
	if err != nil {
		uc.logger.Error("Failed to decode cached forecast",
			ports.F("dir", params.Dir),
			ports.F("key", key),
			ports.F("error", err))
		return nil, fmt.Errorf("decode cache entry %s: %w", key, err)
	}

	stale := cached.IsStale(uc.now(), uc.staleAfter)
	switch {
	case params.CacheOnly && (stale || params.ForceUpdate):
		uc.metrics.RecordLookup(ports.LookupCacheOnly)
	case params.ForceUpdate:
		uc.metrics.RecordLookup(ports.LookupForced)
		return uc.refresh(ctx, params, key)
	case stale:
		uc.metrics.RecordLookup(ports.LookupStale)
		return uc.refresh(ctx, params, key)
	default:
		uc.metrics.RecordLookup(ports.LookupHit)
	}

	uc.logger.Debug("Serving cached forecast",
		ports.F("key", key),
		ports.F("timestamp", cached.Timestamp),
		ports.F("stale", stale))
	return cached, nil
}

// ResetCache replaces the document of dir with an empty one. It is the
// remedy for a corrupt document.
func (uc *UseCase) ResetCache(ctx context.Context, dir string) error {
	mu := uc.lockFor(dir)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.store.Save(ctx, dir, []byte("{}")); err != nil {
		return fmt.Errorf("reset cache document: %w", err)
	}
	uc.metrics.SetDocumentEntries(dir, 0)
	uc.logger.Warn("Forecast cache document reset", ports.F("dir", dir), ports.F("store", uc.store.Name()))
	return nil
}

// CachedKeys lists the cache keys stored in the document of dir.
func (uc *UseCase) CachedKeys(ctx context.Context, dir string) ([]string, error) {
	doc, err := uc.readDocument(ctx, dir)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys, nil
}

// refresh downloads the forecast of key and writes it into the document.
// Concurrent refreshes of one key share a single download and write. The
// shared download ignores the cancellation of whichever caller started it;
// each caller stops waiting when its own context ends.
func (uc *UseCase) refresh(ctx context.Context, params GetForecastParams, key string) (*Forecast, error) {
	detached := context.WithoutCancel(ctx)
	ch := uc.refreshes.DoChan(params.Dir+"|"+key, func() (interface{}, error) {
		return uc.fetchAndStore(detached, params, key)
	})

	select {
	case <-ctx.Done():
		uc.logger.Debug("Stopped waiting for forecast refresh", ports.F("key", key))
		return nil, errors.NewNetworkError(fmt.Sprintf("refresh of %s aborted", key), ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			uc.logger.Debug("Joined in-flight forecast refresh", ports.F("key", key))
		}
		return res.Val.(*Forecast), nil
	}
}

func (uc *UseCase) fetchAndStore(ctx context.Context, params GetForecastParams, key string) (*Forecast, error) {
	fetchStart := time.Now()
	fresh, err := uc.source.FetchForecast(ctx, params.Latitude, params.Longitude)
	uc.metrics.RecordOperation("fetch", time.Since(fetchStart))
	if err != nil {
		uc.logger.Warn("Forecast download failed",
			ports.F("key", key),
			ports.F("error", err))
		return nil, fmt.Errorf("fetch forecast for %s: %w", key, err)
	}

	entry, err := EncodeForecast(fresh)
	if err != nil {
		return nil, err
	}

	mu := uc.lockFor(params.Dir)
	mu.Lock()
	defer mu.Unlock()

	// Re-read under the lock so entries written meanwhile survive.
	doc, err := uc.readDocument(ctx, params.Dir)
	if err != nil {
		return nil, err
	}
	doc[key] = entry

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal cache document: %w", err)
	}
	if err := uc.store.Save(ctx, params.Dir, data); err != nil {
		return nil, fmt.Errorf("write cache document: %w", err)
	}
	uc.metrics.SetDocumentEntries(params.Dir, len(doc))

	uc.logger.Info("Forecast cached",
		ports.F("dir", params.Dir),
		ports.F("key", key),
		ports.F("days", len(fresh.Days)),
		ports.F("timestamp", fresh.Timestamp))
	return fresh, nil
}

func (uc *UseCase) lockFor(dir string) *sync.Mutex {
	mu, _ := uc.locks.LoadOrStore(dir, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (uc *UseCase) readDocument(ctx context.Context, dir string) (map[string]json.RawMessage, error) {
	data, err := uc.store.Load(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("read cache document: %w", err)
	}
	doc, err := parseDocument(data)
	if err != nil {
		uc.logger.Error("Unusable forecast cache document",
			ports.F("dir", dir),
			ports.F("store", uc.store.Name()),
			ports.F("error", err))
		return nil, err
	}
	return doc, nil
}

// parseDocument splits the cache document into its raw entries. Invalid
// JSON or a non-object document is corrupt; a key that occurs twice breaks
// the one-entry-per-key invariant.
func parseDocument(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.NewCacheCorruptError("cache document is not valid JSON", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.NewCacheCorruptError("cache document is not a JSON object", nil)
	}

	doc := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.NewCacheCorruptError("cache document is not valid JSON", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.NewCacheCorruptError("cache document is not valid JSON", nil)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.NewCacheCorruptError(fmt.Sprintf("cache entry %s is not valid JSON", key), err)
		}
		if _, dup := doc[key]; dup {
			return nil, errors.NewConsistencyError(fmt.Sprintf("cache document holds more than one entry for key %s", key))
		}
		doc[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.NewCacheCorruptError("cache document is not valid JSON", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewCacheCorruptError("cache document has trailing data", err)
	}
	return doc, nil
}
