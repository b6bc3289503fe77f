// Package seed populates the reference datasets (hotline directory, facility
// directory) the first time they are read while empty.
//
// A naive count-then-insert lets two concurrent callers both observe an empty
// table and both insert the defaults. Two guards close that race: callers in
// one process share a single in-flight seed per dataset, and stores insert
// with "ignore conflict on natural key" semantics so a second process that
// lost the race inserts nothing.
package seed

import (
	"context"
	"fmt"

	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"golang.org/x/sync/singleflight"
)

// Dataset names a seedable collection.
type Dataset string

const (
	Hotlines  Dataset = "hotlines"
	Locations Dataset = "locations"
)

// Store is the count/insert surface a seedable collection exposes.
type Store[T any] interface {
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, rows []T) (int, error)
}

// Recorder observes completed seed passes.
type Recorder interface {
	SeedInserted(dataset string, rows int)
}

// Coordinator runs seed-if-empty for each dataset.
type Coordinator struct {
	group     singleflight.Group
	hotlines  Store[models.Hotline]
	locations Store[models.Location]
	logger    logging.Logger
	recorder  Recorder
}

func NewCoordinator(hotlines Store[models.Hotline], locations Store[models.Location], logger logging.Logger, recorder Recorder) *Coordinator {
	return &Coordinator{
		hotlines:  hotlines,
		locations: locations,
		logger:    logger.With("module", "seed"),
		recorder:  recorder,
	}
}

// Ensure makes sure dataset is non-empty. It is cheap once the dataset has
// rows and never inserts into a non-empty dataset.
func (c *Coordinator) Ensure(ctx context.Context, dataset Dataset) error {
	switch dataset {
	case Hotlines:
		return ensure(ctx, c, dataset, c.hotlines, DefaultHotlines)
	case Locations:
		return ensure(ctx, c, dataset, c.locations, DefaultLocations)
	default:
		return fmt.Errorf("unknown dataset %q", dataset)
	}
}

func ensure[T any](ctx context.Context, c *Coordinator, dataset Dataset, store Store[T], defaults func() []T) error {
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", dataset, err)
	}
	if n > 0 {
		return nil
	}

	_, err, _ = c.group.Do(string(dataset), func() (any, error) {
		// re-check inside the flight: a flight that finished just before
		// this one started has already seeded
		n, err := store.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", dataset, err)
		}
		if n > 0 {
			return nil, nil
		}

		inserted, err := store.InsertMany(ctx, defaults())
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", dataset, err)
		}
		c.logger.Info(ctx, "dataset seeded", "dataset", string(dataset), "rows", inserted)
		if c.recorder != nil {
			c.recorder.SeedInserted(string(dataset), inserted)
		}
		return nil, nil
	})
	return err
}
