package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/mocks"
	"github.com/gigpay/gigpay-api/internal/models"
	"github.com/gigpay/gigpay-api/internal/services"
)

func TestCalculateMatchScore(t *testing.T) {
	tests := []struct {
		name       string
		userSkills []string
		gigSkills  []string
		want       int
	}{
		{
			name:       "all skills covered",
			userSkills: []string{"go", "sql"},
			gigSkills:  []string{"Go", "SQL"},
			want:       100,
		},
		{
			name:       "half covered rounds",
			userSkills: []string{"go"},
			gigSkills:  []string{"Go", "Rust"},
			want:       50,
		},
		{
			name:       "one of three rounds to 33",
			userSkills: []string{"go"},
			gigSkills:  []string{"Go", "Rust", "Kubernetes"},
			want:       33,
		},
		{
			name:       "two of three rounds to 67",
			userSkills: []string{"go", "rust"},
			gigSkills:  []string{"Go", "Rust", "Kubernetes"},
			want:       67,
		},
		{
			name:       "substring containment either direction",
			userSkills: []string{"JavaScript"},
			gigSkills:  []string{"script", "Advanced JavaScript Frameworks"},
			want:       100,
		},
		{
			name:       "no required skills scores zero",
			userSkills: []string{"go"},
			gigSkills:  []string{},
			want:       0,
		},
		{
			name:       "no user skills scores zero",
			userSkills: nil,
			gigSkills:  []string{"Go"},
			want:       0,
		},
		{
			name:       "empty strings ignored",
			userSkills: []string{"", "  "},
			gigSkills:  []string{"Go", ""},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CalculateMatchScore(tt.userSkills, tt.gigSkills))
		})
	}
}

func TestMatchingAndMissingSkills(t *testing.T) {
	userSkills := []string{"go", "react"}
	gigSkills := []string{"Go", "React Native", "Figma"}

	assert.Equal(t, []string{"Go", "React Native"}, services.MatchingSkills(userSkills, gigSkills))
	assert.Equal(t, []string{"Figma"}, services.MissingSkills(userSkills, gigSkills))
}

func TestMatchGigsForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	user := &models.User{FarcasterID: "fid-1", Skills: []string{"go", "sql"}}

	gigA := models.Gig{ID: uuid.New(), Title: "Backend work", SkillsRequired: []string{"Go", "Rust"}}
	gigB := models.Gig{ID: uuid.New(), Title: "Data pipeline", SkillsRequired: []string{"Go", "SQL"}}

	store.EXPECT().GetUser(gomock.Any(), "fid-1").Return(user, nil)
	store.EXPECT().ListGigs(gomock.Any(), database.GigFilter{}).Return([]models.Gig{gigA, gigB}, nil)

	svc := services.NewGigService(store)
	matches, err := svc.MatchGigsForUser(context.Background(), "fid-1", database.GigFilter{})

	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	// Best match first.
	assert.Equal(t, gigB.ID, matches[0].Gig.ID)
	assert.Equal(t, 100, matches[0].MatchScore)
	assert.Equal(t, []string{"Go", "SQL"}, matches[0].MatchingSkills)
	assert.Empty(t, matches[0].MissingSkills)

	assert.Equal(t, gigA.ID, matches[1].Gig.ID)
	assert.Equal(t, 50, matches[1].MatchScore)
	assert.Equal(t, []string{"Rust"}, matches[1].MissingSkills)
}

func TestMatchGigsForUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, nil)

	svc := services.NewGigService(store)
	matches, err := svc.MatchGigsForUser(context.Background(), "ghost", database.GigFilter{})

	assert.Nil(t, matches)
	assert.EqualError(t, err, "user ghost not found")
}

func TestCreateGig(t *testing.T) {
	tests := []struct {
		name       string
		gig        *models.Gig
		setupMocks func(store *mocks.MockStore)
		wantErr    string
	}{
		{
			name: "defaults applied",
			gig:  &models.Gig{Title: "Logo design"},
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().CreateGig(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, gig *models.Gig) error {
						assert.Equal(t, models.PlatformOther, gig.Platform)
						assert.False(t, gig.PostedDate.IsZero())
						return nil
					})
			},
		},
		{
			name:       "title required",
			gig:        &models.Gig{},
			setupMocks: func(store *mocks.MockStore) {},
			wantErr:    "gig title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			tt.setupMocks(store)

			err := services.NewGigService(store).CreateGig(context.Background(), tt.gig)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
