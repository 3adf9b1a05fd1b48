package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
	"github.com/venturechess/portfolio/backend/internal/model/status"
)

// Repository implements store.Store using SQLite.
type Repository struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath. ":memory:" is accepted.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// 单连接：保证 :memory: 数据库在所有查询间共享，也避免 SQLite 写锁竞争。
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		session_type TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS status_checks (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contacts_created ON contacts(created_at);
	CREATE INDEX IF NOT EXISTS idx_status_checks_timestamp ON status_checks(timestamp);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveContact inserts a stored inquiry.
func (r *Repository) SaveContact(ctx context.Context, c contact.Contact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, phone, experience, session_type, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, string(c.Experience), string(c.SessionType), c.Message, c.Status, c.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// ListContacts returns up to limit inquiries, newest first. limit <= 0 means all.
func (r *Repository) ListContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, experience, session_type, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var out []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}
	return out, nil
}

// GetContact loads one inquiry by id.
func (r *Repository) GetContact(ctx context.Context, id string) (contact.Contact, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, experience, session_type, message, status, created_at
		FROM contacts
		WHERE id = ?
	`, id)

	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Contact{}, contact.ErrNotFound
	}
	return c, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (contact.Contact, error) {
	var (
		c                      contact.Contact
		experience, sessionTyp string
		createdAt              int64
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &experience, &sessionTyp, &c.Message, &c.Status, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return contact.Contact{}, err
		}
		return contact.Contact{}, fmt.Errorf("failed to scan contact: %w", err)
	}
	c.Experience = contact.ExperienceLevel(experience)
	c.SessionType = contact.SessionType(sessionTyp)
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	return c, nil
}

// SaveStatusCheck inserts a legacy status check.
func (r *Repository) SaveStatusCheck(ctx context.Context, c status.Check) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO status_checks (id, client_name, timestamp) VALUES (?, ?, ?)
	`, c.ID, c.ClientName, c.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns up to limit checks in insertion order.
func (r *Repository) ListStatusChecks(ctx context.Context, limit int) ([]status.Check, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}
	defer rows.Close()

	var out []status.Check
	for rows.Next() {
		var (
			c  status.Check
			ts int64
		)
		if err := rows.Scan(&c.ID, &c.ClientName, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan status check: %w", err)
		}
		c.Timestamp = time.Unix(0, ts).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status checks: %w", err)
	}
	return out, nil
}
