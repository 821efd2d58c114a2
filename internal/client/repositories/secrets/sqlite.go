package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/client/models"
	"github.com/dmitrijs2005/zkpauth/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, user string) (*models.SealedSecret, error) {
	s := &models.SealedSecret{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user, salt, nonce, ciphertext, created_at FROM secrets WHERE user = ?`, user,
	).Scan(&s.User, &s.Salt, &s.Nonce, &s.Ciphertext, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret[%s]: %w", user, err)
	}
	return s, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, s *models.SealedSecret) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO secrets (user, salt, nonce, ciphertext, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user) DO UPDATE SET
			salt = excluded.salt,
			nonce = excluded.nonce,
			ciphertext = excluded.ciphertext,
			created_at = excluded.created_at
	`, s.User, s.Salt, s.Nonce, s.Ciphertext, s.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to set secret[%s]: %w", s.User, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, user string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secrets WHERE user = ?`, user)
	if err != nil {
		return fmt.Errorf("failed to delete secret[%s]: %w", user, err)
	}
	return nil
}

func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user FROM secrets ORDER BY user`)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan secret row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate secret rows: %w", err)
	}

	return users, nil
}
