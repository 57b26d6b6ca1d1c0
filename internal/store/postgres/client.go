package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"questforge/internal/quest"
	"questforge/internal/store"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{pool: pool}, nil
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}

func (c *Client) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS quests (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := c.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

func (c *Client) LoadAll(ctx context.Context) (quest.Collection, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, doc FROM quests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading quests: %w", err)
	}
	defer rows.Close()

	col := quest.Collection{}
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning quest row: %w", err)
		}
		q, err := store.DecodeQuest(id, doc)
		if err != nil {
			return nil, err
		}
		col[id] = q
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading quests: %w", err)
	}
	return col, nil
}

func (c *Client) Get(ctx context.Context, id string) (*quest.Quest, error) {
	var doc []byte
	err := c.pool.QueryRow(ctx, `SELECT doc FROM quests WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting quest %s: %w", id, err)
	}
	return store.DecodeQuest(id, doc)
}

func (c *Client) Put(ctx context.Context, q *quest.Quest) error {
	doc, err := store.EncodeQuest(q)
	if err != nil {
		return err
	}
	query := `
	INSERT INTO quests (id, doc, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (id) DO UPDATE SET doc = excluded.doc, updated_at = now()
	`
	if _, err := c.pool.Exec(ctx, query, q.ID, doc); err != nil {
		return fmt.Errorf("putting quest %s: %w", q.ID, err)
	}
	return nil
}

func (c *Client) Rename(ctx context.Context, oldID, newID string) error {
	query := `
	UPDATE quests
	SET id = $1, doc = jsonb_set(doc, '{id}', to_jsonb($1::text)), updated_at = now()
	WHERE id = $2
	`
	if _, err := c.pool.Exec(ctx, query, newID, oldID); err != nil {
		return fmt.Errorf("renaming quest %s: %w", oldID, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if _, err := c.pool.Exec(ctx, `DELETE FROM quests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting quest %s: %w", id, err)
	}
	return nil
}
