package database

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/logging"
)

type Config struct {
	// Path of the bolt file holding the match archive
	FilePath string `envconfig:"SPY_DB_FILE_PATH" default:"spymaster.db"`
}

type DB struct {
	Bolt *bolt.DB
}

func New(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("opening db %s", config.FilePath)

	db, err := bolt.Open(config.FilePath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	return &DB{Bolt: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logging.FromContext(ctx).Infof("closing db connection")

	if err := db.Bolt.Close(); err != nil {
		return fmt.Errorf("close bolt db: %w", err)
	}

	return nil
}
