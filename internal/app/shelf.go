package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/store"
	"github.com/blackwell-systems/bookshelf/internal/tui"
	"go.uber.org/zap"
)

// runShelf opens the interactive shelf.
func runShelf() error {
	s, err := newShelfStore(cfg.Seed.Path, logger)
	if err != nil {
		return err
	}

	logger.Info("shelf opened", zap.Int("books", s.Len()))
	err = tui.Run(s, tui.Options{
		AltScreen:   cfg.UI.AltScreen,
		Placeholder: cfg.UI.Placeholder(),
		Logger:      logger,
	})
	logger.Info("shelf closed", zap.Int("books", s.Len()))
	return err
}

// newShelfStore builds an empty store, pre-populated from seedPath when set.
// A missing seed file is reported but not fatal.
func newShelfStore(seedPath string, logger *zap.Logger) (*store.Store, error) {
	s := store.New(store.WithLogger(logger))
	if seedPath == "" {
		return s, nil
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		warn("seed file %s not found, starting with an empty shelf", seedPath)
		return s, nil
	}

	books, err := catalog.Load(seedPath)
	if err != nil {
		return nil, fmt.Errorf("loading seed: %w", err)
	}
	if err := s.Seed(books); err != nil {
		return nil, err
	}
	return s, nil
}
