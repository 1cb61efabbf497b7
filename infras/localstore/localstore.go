package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bengkel/config"
	"bengkel/infras/otel"
	"bengkel/shared/constant"
	"bengkel/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	otelStoreKeyAttribute = "store.key"

	fileExtension = ".json"
	filePerm      = 0o644
	dirPerm       = 0o755
)

// Store persists each named collection as one JSON document under a data
// directory, the local equivalent of the browser storage the application
// state originally lived in. All reads and writes go through Load and Save;
// there is no partial update at this layer.
type Store struct {
	dir  string
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) (*Store, error) {
	if err := os.MkdirAll(cfg.Storage.Dir, dirPerm); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to create storage directory %s: %w", cfg.Storage.Dir, err)
	}

	log.Info().Str("dir", cfg.Storage.Dir).Msg("Local store initialized")

	return &Store{
		dir:  cfg.Storage.Dir,
		otel: otl,
	}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExtension)
}

// Load reads the collection stored under key into dest and reports whether
// the key was present. A missing key is the normal first-run condition and
// yields (false, nil). Malformed stored content fails closed: it is logged
// and treated as absent rather than crashing the caller.
func (s *Store) Load(ctx context.Context, key string, dest any) (bool, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(otelStoreKeyAttribute, key)

	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read stored data (%s): %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Msg("Stored data is malformed, treating key as empty")

		return false, nil
	}

	return true, nil
}

// Save atomically replaces the collection stored under key. The document is
// written to a temporary file first so a crash mid-write never leaves a
// truncated collection behind.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelStoreKeyAttribute, key)

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to encode data (%s): %w", key, err)
	}

	tmp := s.path(key) + ".tmp"

	if err := os.WriteFile(tmp, raw, filePerm); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to write data (%s): %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to replace data (%s): %w", key, err)
	}

	return nil
}

// Delete removes the record stored under key. Deleting an absent key is a
// no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelStoreKeyAttribute, key)

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete stored data (%s): %w", key, err)
	}

	return nil
}
