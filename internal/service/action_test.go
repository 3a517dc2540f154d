package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/service/mocks"
)

func TestActionService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActionRepository(ctrl)

	want := models.UserAction{UserID: 5, Username: "eve", Action: models.ActionCategoryViewed, Details: "🖱 Devices"}
	repo.EXPECT().AppendUserAction(gomock.Any(), want).Return(nil)
	repo.EXPECT().AppendUserAction(gomock.Any(), gomock.Any()).Return(errors.New("disk is full"))

	as := NewActionService(repo)
	as.Record(context.Background(), models.Requester{ID: 5, Username: "eve"}, models.ActionCategoryViewed, "🖱 Devices")
	// failure is swallowed
	as.Record(context.Background(), models.Requester{ID: 5}, models.ActionStart, "")
}
