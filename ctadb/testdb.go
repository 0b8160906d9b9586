package ctadb

import (
	"context"
	"fmt"
)

// NewMemoryClient opens an in-memory database with the ridership schema
// created but no rows. Tests seed it through the Insert helpers.
func NewMemoryClient(ctx context.Context) (*Client, error) {
	client, err := NewClient(NewConfig(":memory:", EnvTest, false))
	if err != nil {
		return nil, err
	}

	if err := CreateTables(ctx, client.DB); err != nil {
		client.Close() // nolint:errcheck
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return client, nil
}
