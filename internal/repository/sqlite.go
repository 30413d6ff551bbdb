package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"addressbook/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	birthday TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS phones (
	contact  TEXT NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	number   TEXT NOT NULL,
	PRIMARY KEY (contact, position)
);`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type contactRow struct {
	Name     string `db:"name"`
	Birthday string `db:"birthday"`
}

type phoneRow struct {
	Contact string `db:"contact"`
	Number  string `db:"number"`
}

// SQLiteRepository stores the AddressBook in a SQLite database file.
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository opens (creating if needed) the database at path.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Load reads all contacts ordered by insertion position.
func (r *SQLiteRepository) Load(ctx context.Context) (*domain.AddressBook, error) {
	var contacts []contactRow
	if err := r.db.SelectContext(ctx, &contacts,
		`SELECT name, birthday FROM contacts ORDER BY position`); err != nil {
		return nil, fmt.Errorf("selecting contacts: %w", err)
	}

	var phones []phoneRow
	if err := r.db.SelectContext(ctx, &phones,
		`SELECT contact, number FROM phones ORDER BY contact, position`); err != nil {
		return nil, fmt.Errorf("selecting phones: %w", err)
	}

	byContact := make(map[string][]string, len(contacts))
	for _, p := range phones {
		byContact[p.Contact] = append(byContact[p.Contact], p.Number)
	}

	s := snapshot{Contacts: make([]contact, 0, len(contacts))}
	for _, c := range contacts {
		s.Contacts = append(s.Contacts, contact{
			Name:     c.Name,
			Phones:   byContact[c.Name],
			Birthday: c.Birthday,
		})
	}

	return s.toBook()
}

// Save replaces every stored row in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, book *domain.AddressBook) error {
	s := toSnapshot(book)

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
			return fmt.Errorf("clearing phones: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
			return fmt.Errorf("clearing contacts: %w", err)
		}

		for i, c := range s.Contacts {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO contacts (name, position, birthday) VALUES (?, ?, ?)`,
				c.Name, i, c.Birthday); err != nil {
				return fmt.Errorf("inserting contact %q: %w", c.Name, err)
			}
			for j, p := range c.Phones {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO phones (contact, position, number) VALUES (?, ?, ?)`,
					c.Name, j, p); err != nil {
					return fmt.Errorf("inserting phone for %q: %w", c.Name, err)
				}
			}
		}
		return nil
	})
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w; rollback: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
