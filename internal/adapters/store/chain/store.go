package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/doctorai-cli/internal/adapters/store/file"
	passstore "github.com/bnema/doctorai-cli/internal/adapters/store/pass"
	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/ports"
)

// Store writes to primary and falls back to the second backend when primary
// fails. Reads look in primary first. Clear always clears both so a value
// written to the fallback earlier can not resurface.
//
// A write that lands in the fallback also clears the slot in primary, since an
// older primary value would otherwise shadow it on the next read.
type Store struct {
	primary  ports.SessionStore
	fallback ports.SessionStore
}

var _ ports.SessionStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary session store is nil")
	errNilFallbackStore = errors.New("fallback session store is nil")
)

func NewStore(primary ports.SessionStore, fallback ports.SessionStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SessionStore, fallback ports.SessionStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	err := s.primary.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Set(ctx, key, value)
	if fallbackErr == nil {
		return s.clearStalePrimary(ctx, key)
	}

	return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(fallbackErr, domain.ErrSlotEmpty) {
		if isAbsent(err) {
			return "", fallbackErr
		}
		return "", fmt.Errorf("primary backend get failed: %w", err)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context, key string) error {
	err := s.primary.Clear(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Clear(ctx, key)
	if errors.Is(fallbackErr, domain.ErrStoreUnavailable) {
		fallbackErr = nil
	}

	switch {
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
	case err != nil:
		return fmt.Errorf("primary backend clear failed: %w", err)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
	}
	return nil
}

func (s *Store) clearStalePrimary(ctx context.Context, key string) error {
	err := s.primary.Clear(ctx, key)
	if err == nil || isAbsent(err) {
		return nil
	}
	return fmt.Errorf("value stored in fallback backend but stale primary value could not be cleared: %w", err)
}

func isAbsent(err error) bool {
	return errors.Is(err, domain.ErrSlotEmpty) || errors.Is(err, domain.ErrStoreUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
