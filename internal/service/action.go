package service

import (
	"context"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

// ActionRepository is interface for appending audit records
type ActionRepository interface {
	AppendUserAction(ctx context.Context, action models.UserAction) error
}

// ActionService records user actions
type ActionService struct {
	repo ActionRepository
}

// NewActionService creates new ActionService instance
func NewActionService(repo ActionRepository) *ActionService {
	return &ActionService{repo: repo}
}

// Record appends user action. Failures are logged and otherwise ignored.
func (as *ActionService) Record(ctx context.Context, requester models.Requester, action, details string) {
	err := as.repo.AppendUserAction(ctx, models.UserAction{
		UserID:   requester.ID,
		Username: requester.Username,
		Action:   action,
		Details:  details,
	})
	if err != nil {
		logger.Log.Error("append user action",
			zap.Int64("user_id", requester.ID), zap.String("action", action), zap.Error(err))
	}
}
