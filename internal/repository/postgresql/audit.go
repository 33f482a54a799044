package postgresql

import (
	"context"
	"fmt"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/audit"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Append implements audit.AuditRepository.
func (r *auditRepository) Append(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := q.Exec(ctx, `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, before, after, source_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Before, entry.After, entry.SourceAddress)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
