package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cvlsoft/aios_backend/config"
)

var ErrFailedToConnect = errors.New("failed to connect to mongo")

// NewMongoFromCentral creates a connected mongo client from central config
// and returns the configured database handle.
func NewMongoFromCentral(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Database, error) {
	client, err := NewMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Name), nil
}

// NewMongo dials the mongo server, retrying a configurable number of times
// before giving up. The returned client owns a connection pool shared by
// all requests.
func NewMongo(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout(cfg)).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.MaxPoolSize > 0 {
		opts = opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts = opts.SetMinPoolSize(cfg.MinPoolSize)
	}

	var lastErr error
	for range attempts {
		client, err := mongo.Connect(opts)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval(cfg)):
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrFailedToConnect, lastErr)
}

func connectTimeout(cfg config.DatabaseConfig) time.Duration {
	if cfg.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
}

func retryInterval(cfg config.DatabaseConfig) time.Duration {
	if cfg.RetryIntervalSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(cfg.RetryIntervalSeconds) * time.Second
}
