package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"questforge/internal/quest"
	"questforge/internal/store"

	_ "modernc.org/sqlite"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Client, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	db, err := sql.Open("sqlite", driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	return &Client{db: db}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}

func (c *Client) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS quests (
		id TEXT PRIMARY KEY,
		doc TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

func (c *Client) LoadAll(ctx context.Context) (quest.Collection, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, doc FROM quests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading quests: %w", err)
	}
	defer rows.Close()

	col := quest.Collection{}
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning quest row: %w", err)
		}
		q, err := store.DecodeQuest(id, []byte(doc))
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
	var doc string
	err := c.db.QueryRowContext(ctx, `SELECT doc FROM quests WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting quest %s: %w", id, err)
	}
	return store.DecodeQuest(id, []byte(doc))
}

func (c *Client) Put(ctx context.Context, q *quest.Quest) error {
	doc, err := store.EncodeQuest(q)
	if err != nil {
		return err
	}
	query := `
	INSERT INTO quests (id, doc, updated_at)
	VALUES (?, ?, datetime('now'))
	ON CONFLICT (id) DO UPDATE SET
		doc = excluded.doc,
		updated_at = datetime('now')
	`
	if _, err := c.db.ExecContext(ctx, query, q.ID, string(doc)); err != nil {
		return fmt.Errorf("putting quest %s: %w", q.ID, err)
	}
	return nil
}

func (c *Client) Rename(ctx context.Context, oldID, newID string) error {
	query := `
	UPDATE quests
	SET id = ?, doc = json_set(doc, '$.id', ?), updated_at = datetime('now')
	WHERE id = ?
	`
	if _, err := c.db.ExecContext(ctx, query, newID, newID, oldID); err != nil {
		return fmt.Errorf("renaming quest %s: %w", oldID, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting quest %s: %w", id, err)
	}
	return nil
}
