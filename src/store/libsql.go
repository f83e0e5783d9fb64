package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/errors"
)

// Store is a libSQL-backed implementation of the read interfaces, plus the
// writes the CLI needs. Chats are stored as JSON documents; world books and
// transactions as plain rows.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, errors.WrapWithContext(errors.ErrStoreConnection, "ping %s", dbPath)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS chats (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			is_group INTEGER NOT NULL DEFAULT 0,
			document TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS world_books (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			content TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			chat_id TEXT NOT NULL,
			from_user TEXT,
			status TEXT,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_chat ON transactions(chat_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.NewStoreError("init", "schema", err)
		}
	}
	return nil
}

// GetWorldBook returns the world book with the given id.
func (s *Store) GetWorldBook(ctx context.Context, id string) (*core.WorldBookInfo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(category, ''), content, COALESCE(description, '')
		 FROM world_books WHERE id = ?`, id)

	var book core.WorldBookInfo
	err := row.Scan(&book.ID, &book.Name, &book.Category, &book.Content, &book.Description)
	if err == sql.ErrNoRows {
		return nil, errors.ErrWorldBookNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("get", "world_books", err)
	}
	return &book, nil
}

// PutWorldBook inserts or replaces a world book, assigning an id if absent.
func (s *Store) PutWorldBook(ctx context.Context, book *core.WorldBookInfo) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO world_books (id, name, category, content, description)
		 VALUES (?, ?, ?, ?, ?)`,
		book.ID, book.Name, book.Category, book.Content, book.Description)
	if err != nil {
		return errors.NewStoreError("put", "world_books", err)
	}
	return nil
}

// ListWorldBooks returns every world book, without content, for listings.
func (s *Store) ListWorldBooks(ctx context.Context) ([]core.WorldBookInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(category, ''), COALESCE(description, '')
		 FROM world_books ORDER BY name`)
	if err != nil {
		return nil, errors.NewStoreError("list", "world_books", err)
	}
	defer rows.Close()

	var books []core.WorldBookInfo
	for rows.Next() {
		var book core.WorldBookInfo
		if err := rows.Scan(&book.ID, &book.Name, &book.Category, &book.Description); err != nil {
			return nil, errors.NewStoreError("scan", "world_books", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// GetChat loads one chat document.
func (s *Store) GetChat(ctx context.Context, id string) (*core.Chat, error) {
	row := s.db.QueryRowContext(ctx, `SELECT document FROM chats WHERE id = ?`, id)

	var document string
	err := row.Scan(&document)
	if err == sql.ErrNoRows {
		return nil, errors.ErrChatNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("get", "chats", err)
	}

	var chat core.Chat
	if err := json.Unmarshal([]byte(document), &chat); err != nil {
		return nil, errors.NewStoreError("decode", "chats", err)
	}
	return &chat, nil
}

// PutChat inserts or replaces a chat document.
func (s *Store) PutChat(ctx context.Context, chat *core.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.NewString()
	}
	document, err := json.Marshal(chat)
	if err != nil {
		return errors.NewStoreError("encode", "chats", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO chats (id, name, is_group, document, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		chat.ID, chat.Name, boolToInt(chat.IsGroup), string(document), time.Now().UTC())
	if err != nil {
		return errors.NewStoreError("put", "chats", err)
	}
	return nil
}

// ListChats loads every chat document, most recently updated first.
func (s *Store) ListChats(ctx context.Context) ([]*core.Chat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM chats ORDER BY updated_at DESC`)
	if err != nil {
		return nil, errors.NewStoreError("list", "chats", err)
	}
	defer rows.Close()

	var chats []*core.Chat
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, errors.NewStoreError("scan", "chats", err)
		}
		var chat core.Chat
		if err := json.Unmarshal([]byte(document), &chat); err != nil {
			return nil, errors.NewStoreError("decode", "chats", err)
		}
		chats = append(chats, &chat)
	}
	return chats, rows.Err()
}

// GetTransactionsByChatID lists a chat's transactions, oldest first.
func (s *Store) GetTransactionsByChatID(ctx context.Context, chatID string) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chat_id, COALESCE(from_user, ''), COALESCE(status, ''), message, created_at
		 FROM transactions WHERE chat_id = ? ORDER BY created_at ASC`, chatID)
	if err != nil {
		return nil, errors.NewStoreError("list", "transactions", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := rows.Scan(&tx.ID, &tx.ChatID, &tx.FromUser, &tx.Status, &tx.Message, &tx.CreatedAt); err != nil {
			return nil, errors.NewStoreError("scan", "transactions", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// AddTransaction records a transaction, assigning an id if absent.
func (s *Store) AddTransaction(ctx context.Context, tx *core.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, chat_id, from_user, status, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.ChatID, tx.FromUser, tx.Status, tx.Message, tx.CreatedAt)
	if err != nil {
		return errors.NewStoreError("insert", "transactions", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
