package repository

import (
	"context"

	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/repository/postgres"
)

const insertUserActionQuery = `
						INSERT INTO user_actions (user_id, username, action, details)
						VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''))
`

// ActionRepository implements ActionRepository interface
type ActionRepository struct {
	db *postgres.DB
}

// NewActionRepository creates new ActionRepository instance
func NewActionRepository(db *postgres.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

// AppendUserAction appends audit record
func (ar *ActionRepository) AppendUserAction(ctx context.Context, action models.UserAction) error {
	_, err := ar.db.Exec(ctx, insertUserActionQuery, action.UserID, action.Username, action.Action, action.Details)
	return err
}
