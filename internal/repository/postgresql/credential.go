package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftbook/attendance-backend-go/internal/domain/auth"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/database"
)

type credentialRepository struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) auth.CredentialRepository {
	return &credentialRepository{db: db}
}

// Resolve implements auth.CredentialRepository.
func (r *credentialRepository) Resolve(ctx context.Context, secretDigest string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var employeeID string
	err := q.QueryRow(ctx,
		`SELECT employee_id FROM credentials WHERE secret_digest = $1`,
		secretDigest,
	).Scan(&employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrInvalidSecretKey
		}
		return "", fmt.Errorf("failed to resolve credential: %w", err)
	}
	return employeeID, nil
}

// Store implements auth.CredentialRepository.
func (r *credentialRepository) Store(ctx context.Context, employeeID string, secretDigest string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO credentials (employee_id, secret_digest)
		VALUES ($1, $2)
		ON CONFLICT (employee_id) DO UPDATE SET secret_digest = EXCLUDED.secret_digest
	`, employeeID, secretDigest)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// DeleteByEmployee implements auth.CredentialRepository.
func (r *credentialRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM credentials WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
