package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/internal/domains/book/repository"
)

// deliveryService coordinates a delivery batch. Candidates are processed
// strictly in input order inside one transaction; each candidate resolves
// under its own savepoint so a fault in one leaves the rest intact. The
// unique constraint on (author_id, title) is the single source of truth for
// duplicate prevention - the existence check is advisory, and losing an
// insert race is handled as a merge, not a fault.
type deliveryService struct {
	batches repository.BatchRunner
}

func NewDeliveryService(batches repository.BatchRunner) DeliveryServiceInterface {
	return &deliveryService{batches: batches}
}

// naturalKey identifies a book independent of its opaque ID.
type naturalKey struct {
	authorID uuid.UUID
	title    string
}

func (s *deliveryService) Deliver(ctx context.Context, items []model.DeliveryItem) (*model.DeliveryResult, error) {
	result := &model.DeliveryResult{
		Items: make([]model.DeliveryOutcome, 0, len(items)),
	}

	err := s.batches.RunBatch(ctx, func(btx repository.BatchTx) error {
		// Books touched earlier in this batch, so that two candidates for
		// the same new (author, title) merge instead of both inserting.
		seen := make(map[naturalKey]uuid.UUID)

		for i, item := range items {
			outcome := s.processItem(ctx, btx, i, item, seen)
			result.Items = append(result.Items, outcome)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Message = "delivery processed"
	result.Tally()

	log.Info().
		Int("total", result.Total).
		Int("inserted", result.Inserted).
		Int("merged", result.Merged).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("delivery batch processed")

	return result, nil
}

// processItem resolves one candidate and never returns an error: every
// failure mode becomes a per-item outcome.
func (s *deliveryService) processItem(
	ctx context.Context,
	btx repository.BatchTx,
	index int,
	item model.DeliveryItem,
	seen map[naturalKey]uuid.UUID,
) model.DeliveryOutcome {
	outcome := model.DeliveryOutcome{Index: index, Title: item.Title}

	if err := item.Validate(); err != nil {
		outcome.Status = model.DeliveryFailed
		outcome.Reason = err.Error()
		return outcome
	}

	key := naturalKey{authorID: item.AuthorID, title: item.Title}

	// An earlier candidate in this batch already produced this row.
	if id, ok := seen[key]; ok {
		s.mergeInto(ctx, btx, id, item.Count, &outcome)
		return outcome
	}

	err := btx.Item(ctx, func(store repository.DeliveryStore) error {
		return s.resolve(ctx, store, item, &outcome)
	})

	switch {
	case err == nil:
		if outcome.BookID != nil {
			seen[key] = *outcome.BookID
		}
	case errors.Is(err, model.ErrDuplicateTitle):
		// A concurrent writer inserted the same (author, title) between our
		// lookup and our insert. The savepoint has been rolled back; the
		// row exists now, so merge into it.
		s.mergeByNaturalKey(ctx, btx, item, &outcome)
		if outcome.BookID != nil {
			seen[key] = *outcome.BookID
		}
	case errors.Is(err, model.ErrAuthorNotFound):
		// The author vanished between the advisory check and the insert.
		// The foreign key caught it; same contract as the advisory miss.
		outcome.Status = model.DeliverySkipped
		outcome.Reason = "author not found"
	default:
		log.Warn().
			Int("index", index).
			Str("title", item.Title).
			Err(err).
			Msg("delivery item failed")
		outcome.Status = model.DeliveryFailed
		outcome.Reason = err.Error()
	}

	return outcome
}

// resolve is the upsert decision for one candidate, run under a savepoint:
// merge into an existing (author, title) row, insert when the author exists,
// skip quietly when it does not.
func (s *deliveryService) resolve(
	ctx context.Context,
	store repository.DeliveryStore,
	item model.DeliveryItem,
	outcome *model.DeliveryOutcome,
) error {
	existing, err := store.FindByNaturalKey(ctx, item.AuthorID, item.Title)
	if err == nil {
		merged, mErr := store.AddCopies(ctx, existing.ID, item.Count)
		if mErr != nil {
			return mErr
		}
		outcome.Status = model.DeliveryMerged
		outcome.BookID = &merged.ID
		return nil
	}
	if !errors.Is(err, model.ErrBookNotFound) {
		return err
	}

	exists, err := store.AuthorExists(ctx, item.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		outcome.Status = model.DeliverySkipped
		outcome.Reason = "author not found"
		return nil
	}

	created, err := store.Insert(ctx, item.ToEntity())
	if err != nil {
		return err
	}

	outcome.Status = model.DeliveryInserted
	outcome.BookID = &created.ID
	return nil
}

// mergeInto adds count copies to a known row under a fresh savepoint.
func (s *deliveryService) mergeInto(
	ctx context.Context,
	btx repository.BatchTx,
	id uuid.UUID,
	count int,
	outcome *model.DeliveryOutcome,
) {
	err := btx.Item(ctx, func(store repository.DeliveryStore) error {
		merged, aErr := store.AddCopies(ctx, id, count)
		if aErr != nil {
			return aErr
		}
		outcome.Status = model.DeliveryMerged
		outcome.BookID = &merged.ID
		return nil
	})
	if err != nil {
		outcome.Status = model.DeliveryFailed
		outcome.Reason = err.Error()
		outcome.BookID = nil
	}
}

// mergeByNaturalKey re-reads the winning row after a lost insert race and
// merges into it.
func (s *deliveryService) mergeByNaturalKey(
	ctx context.Context,
	btx repository.BatchTx,
	item model.DeliveryItem,
	outcome *model.DeliveryOutcome,
) {
	err := btx.Item(ctx, func(store repository.DeliveryStore) error {
		existing, fErr := store.FindByNaturalKey(ctx, item.AuthorID, item.Title)
		if fErr != nil {
			return fErr
		}
		merged, aErr := store.AddCopies(ctx, existing.ID, item.Count)
		if aErr != nil {
			return aErr
		}
		outcome.Status = model.DeliveryMerged
		outcome.BookID = &merged.ID
		return nil
	})
	if err != nil {
		outcome.Status = model.DeliveryFailed
		outcome.Reason = err.Error()
		outcome.BookID = nil
	}
}
