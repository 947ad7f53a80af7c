package store

import (
	"context"
	"errors"

	"github.com/vibetimer/vibe/internal/model"
)

// LoadState reads the persisted document and merges it over defaults. The
// state result is always usable: a missing document yields the defaults, and
// a malformed or unreadable one falls back to defaults with the error
// returned for diagnostics only. Transient fields are reset regardless of
// what was persisted.
func (s *Store) LoadState(ctx context.Context) (model.AppState, error) {
	raw, err := s.Get(ctx, StateKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.DefaultState(), nil
		}
		return model.DefaultState(), err
	}
	st, err := model.MergeWithDefaults(raw)
	if err != nil {
		return model.DefaultState(), err
	}
	model.ResetTransient(&st)
	return st, nil
}

// SaveState writes the document to the fixed slot. A failure leaves the
// in-memory state authoritative; the next successful save carries the
// correction forward.
func (s *Store) SaveState(ctx context.Context, st model.AppState) error {
	raw, err := model.ExportDocument(st)
	if err != nil {
		return err
	}
	return s.Set(ctx, StateKey, raw)
}
