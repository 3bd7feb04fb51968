package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/migrations"
	"github.com/MKhiriev/go-vault-client/models"
)

// ErrNotFound marks a cache miss for a single-row lookup.
var ErrNotFound = errors.New("row not found in local cache")

const (
	tableItems       = "items"
	tableFolders     = "folders"
	tableCollections = "collections"
)

type sqliteCache struct {
	db  *sql.DB
	log *logger.Logger
	sb  sq.StatementBuilderType

	mu     sync.Mutex
	subs   map[string]map[int]chan struct{}
	nextID int
}

// NewSQLiteCache opens (or creates) the cache database at path and applies
// the embedded schema migrations. ":memory:" keeps the cache process-local.
func NewSQLiteCache(path string, log *logger.Logger) (VaultCache, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes
	// writers, which sqlite requires anyway
	db.SetMaxOpenConns(1)

	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache database: %w", err)
	}

	return &sqliteCache{
		db:   db,
		log:  log,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
		subs: make(map[string]map[int]chan struct{}),
	}, nil
}

func (c *sqliteCache) ReplaceAllForUser(ctx context.Context, userID string, payload models.CachePayload) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{tableItems, tableFolders, tableCollections} {
		if _, err = c.sb.Delete(table).Where(sq.Eq{"user_id": userID}).RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("clear %s for user: %w", table, err)
		}
	}

	for _, item := range payload.Items {
		if err = insertRow(ctx, tx, c.sb, tableItems, userID, item.ID, item); err != nil {
			return err
		}
	}
	for _, folder := range payload.Folders {
		if err = insertRow(ctx, tx, c.sb, tableFolders, userID, folder.ID, folder); err != nil {
			return err
		}
	}
	for _, coll := range payload.Collections {
		if err = insertRow(ctx, tx, c.sb, tableCollections, userID, coll.ID, coll); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache replace: %w", err)
	}

	c.notify(tableItems, userID)
	c.notify(tableFolders, userID)
	c.notify(tableCollections, userID)
	return nil
}

func (c *sqliteCache) UpsertItem(ctx context.Context, userID string, item models.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item row: %w", err)
	}

	_, err = c.sb.Insert(tableItems).
		Columns("user_id", "id", "payload").
		Values(userID, item.ID, string(raw)).
		Suffix("ON CONFLICT(user_id, id) DO UPDATE SET payload = excluded.payload").
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("upsert item row: %w", err)
	}

	c.notify(tableItems, userID)
	return nil
}

func (c *sqliteCache) DeleteItem(ctx context.Context, userID, itemID string) error {
	_, err := c.sb.Delete(tableItems).
		Where(sq.Eq{"user_id": userID, "id": itemID}).
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete item row: %w", err)
	}

	c.notify(tableItems, userID)
	return nil
}

func (c *sqliteCache) GetItem(ctx context.Context, userID, itemID string) (models.Item, error) {
	row := c.sb.Select("payload").
		From(tableItems).
		Where(sq.Eq{"user_id": userID, "id": itemID}).
		RunWith(c.db).
		QueryRowContext(ctx)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("get item row: %w", err)
	}

	var item models.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode item row: %w", err)
	}
	return item, nil
}

func (c *sqliteCache) ItemsStream(ctx context.Context, userID string) <-chan []models.Item {
	return stream(ctx, c, tableItems, userID, queryRows[models.Item])
}

func (c *sqliteCache) FoldersStream(ctx context.Context, userID string) <-chan []models.Folder {
	return stream(ctx, c, tableFolders, userID, queryRows[models.Folder])
}

func (c *sqliteCache) CollectionsStream(ctx context.Context, userID string) <-chan []models.Collection {
	return stream(ctx, c, tableCollections, userID, queryRows[models.Collection])
}

func (c *sqliteCache) DeleteAllForUser(ctx context.Context, userID string) error {
	for _, table := range []string{tableItems, tableFolders, tableCollections} {
		if _, err := c.sb.Delete(table).Where(sq.Eq{"user_id": userID}).RunWith(c.db).ExecContext(ctx); err != nil {
			return fmt.Errorf("clear %s for user: %w", table, err)
		}
		c.notify(table, userID)
	}
	return nil
}

func (c *sqliteCache) Close() error {
	return c.db.Close()
}

func insertRow(ctx context.Context, tx *sql.Tx, sb sq.StatementBuilderType, table, userID, id string, row any) error {
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", table, err)
	}

	_, err = sb.Insert(table).
		Columns("user_id", "id", "payload").
		Values(userID, id, string(raw)).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert %s row %s: %w", table, id, err)
	}
	return nil
}

// queryRows loads and decodes the full mirror of one table for one user.
func queryRows[T any](ctx context.Context, c *sqliteCache, table, userID string) ([]T, error) {
	rows, err := c.sb.Select("payload").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		RunWith(c.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s rows: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []T
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		var v T
		if err = json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// stream emits the current mirror immediately, then re-queries and emits on
// every change notification until ctx ends.
func stream[T any](ctx context.Context, c *sqliteCache, table, userID string, query func(context.Context, *sqliteCache, string, string) ([]T, error)) <-chan []T {
	out := make(chan []T, 1)
	subID, notify := c.subscribe(table, userID)

	emit := func() bool {
		rows, err := query(ctx, c, table, userID)
		if err != nil {
			c.log.Warn().Err(err).Str("table", table).Msg("cache stream query failed")
			return true
		}
		select {
		case out <- rows:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(out)
		defer c.unsubscribe(table, userID, subID)

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-notify:
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}

func (c *sqliteCache) subscribe(table, userID string) (int, chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := table + "|" + userID
	if c.subs[key] == nil {
		c.subs[key] = make(map[int]chan struct{})
	}
	c.nextID++
	ch := make(chan struct{}, 1)
	c.subs[key][c.nextID] = ch
	return c.nextID, ch
}

func (c *sqliteCache) unsubscribe(table, userID string, subID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs[table+"|"+userID], subID)
}

func (c *sqliteCache) notify(table, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range c.subs[table+"|"+userID] {
		select {
		case ch <- struct{}{}:
		default: // a pending notification already covers this change
		}
	}
}
