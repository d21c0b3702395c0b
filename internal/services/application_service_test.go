package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gigpay/gigpay-api/internal/mocks"
	"github.com/gigpay/gigpay-api/internal/models"
	"github.com/gigpay/gigpay-api/internal/services"
)

func TestCreateApplication(t *testing.T) {
	gigID := uuid.New()
	existingUser := &models.User{FarcasterID: "fid-1"}
	existingGig := &models.Gig{ID: gigID, Title: "Backend work"}

	tests := []struct {
		name       string
		app        *models.Application
		setupMocks func(store *mocks.MockStore)
		wantErr    string
	}{
		{
			name: "defaults applied",
			app:  &models.Application{UserID: "fid-1", GigID: gigID},
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), "fid-1").Return(existingUser, nil)
				store.EXPECT().GetGig(gomock.Any(), gigID).Return(existingGig, nil)
				store.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, app *models.Application) error {
						assert.Equal(t, models.ApplicationStatusApplied, app.Status)
						assert.False(t, app.ApplicationDate.IsZero())
						return nil
					})
			},
		},
		{
			name: "unknown user rejected",
			app:  &models.Application{UserID: "ghost", GigID: gigID},
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, nil)
			},
			wantErr: "user ghost not found",
		},
		{
			name: "unknown gig rejected",
			app:  &models.Application{UserID: "fid-1", GigID: gigID},
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), "fid-1").Return(existingUser, nil)
				store.EXPECT().GetGig(gomock.Any(), gigID).Return(nil, nil)
			},
			wantErr: fmt.Sprintf("gig %s not found", gigID),
		},
		{
			name: "invalid status rejected",
			app:  &models.Application{UserID: "fid-1", GigID: gigID, Status: "daydreaming"},
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), "fid-1").Return(existingUser, nil)
				store.EXPECT().GetGig(gomock.Any(), gigID).Return(existingGig, nil)
			},
			wantErr: "invalid application status: daydreaming",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			tt.setupMocks(store)

			err := services.NewApplicationService(store).CreateApplication(context.Background(), tt.app)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().UpdateApplicationStatus(gomock.Any(), id, models.ApplicationStatusHired, "signed").Return(nil)

	svc := services.NewApplicationService(store)
	assert.NoError(t, svc.UpdateStatus(context.Background(), id, models.ApplicationStatusHired, "signed"))
}

func TestUpdateStatusInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewApplicationService(mocks.NewMockStore(ctrl))
	err := svc.UpdateStatus(context.Background(), uuid.New(), "daydreaming", "")
	assert.EqualError(t, err, "invalid application status: daydreaming")
}
