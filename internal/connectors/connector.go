package connectors

import "context"

// Row is one record fetched from an external system.
type Row map[string]any

// Connector reads rows from an external data source.
type Connector interface {
	Connect(ctx context.Context, dsn string) error
	Close() error
	FetchRows(ctx context.Context, query string) ([]Row, error)
}
