package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresPool is an interface that represents a connection pool to a driver.
type PostgresPool interface {
	// Acquire returns a connection from the pool.
	Acquire(ctx context.Context) (*pgxpool.Conn, error)

	// BeginTx starts a new transaction and returns a Tx.
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)

	// Exec executes an SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)

	// Query executes an SQL query and returns the resulting rows.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow executes an SQL query and returns a single row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// SendBatch sends a batch of queries to the server. The batch is executed as a single transaction.
	SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults

	// Close closes the pool and all its connections.
	Close()
}

// maxOpenDbConn defines the maximum number of open driver connections.
const maxOpenDbConn = 10

// maxDbLifetime is the maximum lifetime of a driver connection in the pool.
const maxDbLifetime = 5 * time.Minute

// ConnectSQL connects to the Postgres server and returns a pool.
func ConnectSQL(dsn string) (PostgresPool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = int32(maxOpenDbConn)
	config.MaxConnLifetime = maxDbLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err = testDB(pool); err != nil {
		return nil, err
	}

	return pool, nil
}

// testDB acquires and releases a connection from the pool
func testDB(p *pgxpool.Pool) error {
	conn, err := p.Acquire(context.Background())
	if err != nil {
		return err
	}
	defer conn.Release()
	return nil
}

const createStateTable = `
CREATE TABLE IF NOT EXISTS storefront_state (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ KV = (*PostgresKV)(nil)

// PostgresKV backs the persistence port with a single key-value table,
// writing through the transaction manager so a mutation is applied as one
// atomic statement.
type PostgresKV struct {
	conn   PostgresPool
	tm     *TransactionManager
	logger *zap.Logger
}

func NewPostgresKV(conn PostgresPool, logger *zap.Logger) (*PostgresKV, error) {
	if _, err := conn.Exec(context.Background(), createStateTable); err != nil {
		return nil, fmt.Errorf("create state table failed: %w", err)
	}
	return &PostgresKV{
		conn:   conn,
		tm:     NewTransactionManager(conn, logger),
		logger: logger,
	}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.conn.QueryRow(ctx, `SELECT value FROM storefront_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		p.logger.Error("Failed to get key from postgres", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value string) error {
	err := p.tm.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO storefront_state (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			key, value)
		return err
	})
	if err != nil {
		p.logger.Error("Failed to set key in postgres", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	if _, err := p.conn.Exec(ctx, `DELETE FROM storefront_state WHERE key = $1`, key); err != nil {
		p.logger.Error("Failed to delete key from postgres", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
