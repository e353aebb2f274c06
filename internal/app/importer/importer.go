// Package importer populates the local tables from the external catalog.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/swapi"
)

// PageFetcher is the part of the catalog client the importer needs
type PageFetcher interface {
	FetchPage(ctx context.Context, resource swapi.Resource, cursor string) (*swapi.Page, error)
}

// Summary reports the outcome of one import run
type Summary struct {
	Resource   swapi.Resource `json:"resource"`
	Pages      int            `json:"pages"`
	Imported   int            `json:"imported"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
	FetchError error          `json:"-"`
}

// Complete reports whether every page was fetched
func (s *Summary) Complete() bool {
	return s.FetchError == nil
}

// Binding ties a resource to its model: how a raw record maps to T, how an
// existing row is detected by natural key, and how a new row is stored.
type Binding[T any] struct {
	Map    func(swapi.Record) (*T, error)
	Exists func(ctx context.Context, item *T) (bool, error)
	Create func(ctx context.Context, item *T) (int64, error)
}

type outcome int

const (
	outcomeImported outcome = iota
	outcomeSkipped
)

// recordHandler is a Binding with its type parameter erased
type recordHandler func(ctx context.Context, rec swapi.Record) (outcome, error)

// ErrCursorLoop marks a walk stopped because the catalog pointed back at a
// page already fetched
var ErrCursorLoop = errors.New("catalog next link revisits a fetched page")

// ErrUnboundResource is returned for resources without a registered binding
var ErrUnboundResource = errors.New("no binding registered for resource")

// Importer runs imports. Concurrent runs for the same resource share one
// execution and its Summary.
type Importer struct {
	fetcher  PageFetcher
	logger   zerolog.Logger
	mu       sync.RWMutex
	handlers map[swapi.Resource]recordHandler
	group    singleflight.Group
}

// New creates an importer reading from fetcher
func New(fetcher PageFetcher, lgr zerolog.Logger) *Importer {
	return &Importer{
		fetcher:  fetcher,
		logger:   lgr,
		handlers: make(map[swapi.Resource]recordHandler),
	}
}

// Register binds resource to a model type. Registering twice replaces the
// previous binding.
func Register[T any](imp *Importer, resource swapi.Resource, b Binding[T]) {
	handler := func(ctx context.Context, rec swapi.Record) (outcome, error) {
		item, err := b.Map(rec)
		if err != nil {
			return 0, err
		}
		exists, err := b.Exists(ctx, item)
		if err != nil {
			return 0, err
		}
		if exists {
			return outcomeSkipped, nil
		}
		if _, err := b.Create(ctx, item); err != nil {
			return 0, err
		}
		return outcomeImported, nil
	}

	imp.mu.Lock()
	imp.handlers[resource] = handler
	imp.mu.Unlock()
}

func (imp *Importer) handler(resource swapi.Resource) (recordHandler, bool) {
	imp.mu.RLock()
	defer imp.mu.RUnlock()
	h, ok := imp.handlers[resource]
	return h, ok
}

// Import pulls every page of resource and stores records whose natural key
// is not present yet. It does not check whether the table is empty. A
// failing record is counted and skipped; a failing page stops the run and
// keeps what was stored before it.
func (imp *Importer) Import(ctx context.Context, resource swapi.Resource) (*Summary, error) {
	if _, ok := imp.handler(resource); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundResource, resource)
	}

	v, err, _ := imp.group.Do(string(resource), func() (any, error) {
		return imp.run(context.WithoutCancel(ctx), resource), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Summary), nil
}

// PopulateIfEmpty imports resource only when isEmpty reports an empty
// table. The check runs inside the shared execution, so callers racing on
// an empty table trigger a single import. The returned Summary is nil when
// nothing had to be imported.
func (imp *Importer) PopulateIfEmpty(ctx context.Context, resource swapi.Resource, isEmpty func(context.Context) (bool, error)) (*Summary, error) {
	if _, ok := imp.handler(resource); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundResource, resource)
	}

	empty, err := isEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, nil
	}

	v, err, _ := imp.group.Do(string(resource), func() (any, error) {
		detached := context.WithoutCancel(ctx)
		empty, err := isEmpty(detached)
		if err != nil {
			return nil, err
		}
		if !empty {
			return (*Summary)(nil), nil
		}
		return imp.run(detached, resource), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Summary), nil
}

func (imp *Importer) run(ctx context.Context, resource swapi.Resource) *Summary {
	handle, _ := imp.handler(resource)
	summary := &Summary{Resource: resource}
	lgr := imp.logger.With().Str("resource", string(resource)).Logger()

	lgr.Info().Msg("Starting catalog import")

	cursor := ""
	visited := map[string]struct{}{cursor: {}}
	for {
		page, err := imp.fetcher.FetchPage(ctx, resource, cursor)
		if err != nil {
			summary.FetchError = fmt.Errorf("%w: %w", apperrors.ErrExternalFetch, err)
			lgr.Warn().Err(err).Int("pages", summary.Pages).Msg("Catalog fetch failed, keeping partial import")
			break
		}
		summary.Pages++

		for i, rec := range page.Results {
			res, err := handle(ctx, rec)
			if err != nil {
				summary.Failed++
				lgr.Warn().Err(err).Int("page", summary.Pages).Int("index", i).
					Interface("key", naturalKey(rec)).Msg("Failed to import record")
				continue
			}
			switch res {
			case outcomeSkipped:
				summary.Skipped++
				lgr.Debug().Interface("key", naturalKey(rec)).Msg("Record already stored, skipping")
			case outcomeImported:
				summary.Imported++
			}
		}

		if page.Next == "" {
			break
		}
		if _, seen := visited[page.Next]; seen {
			summary.FetchError = fmt.Errorf("%w: %w %q", apperrors.ErrExternalFetch, ErrCursorLoop, page.Next)
			lgr.Warn().Str("next", page.Next).Int("pages", summary.Pages).Msg("Catalog returned a page already visited, stopping")
			break
		}
		visited[page.Next] = struct{}{}
		cursor = page.Next
	}

	evt := lgr.Info()
	if summary.FetchError != nil {
		evt = lgr.Warn().AnErr("fetch_error", summary.FetchError)
	}
	evt.Int("pages", summary.Pages).
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Catalog import finished")

	return summary
}

// naturalKey picks the identifying field of a raw record for log lines
func naturalKey(rec swapi.Record) any {
	if v, ok := rec["name"]; ok {
		return v
	}
	return rec["title"]
}
