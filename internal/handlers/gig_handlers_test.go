package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/mocks"
	"github.com/gigpay/gigpay-api/internal/models"
	"github.com/gigpay/gigpay-api/internal/services"
)

func newGigHandler(t *testing.T) (*GigHandler, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockStore(ctrl)
	return NewGigHandler(&CommonServices{Gigs: services.NewGigService(store)}), store
}

func TestGigHandler_ListGigs(t *testing.T) {
	handler, store := newGigHandler(t)

	gigs := []models.Gig{{ID: uuid.New(), Title: "Backend work"}}
	store.EXPECT().ListGigs(gomock.Any(), database.GigFilter{Platform: "upwork", Limit: 5}).Return(gigs, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/gigs?platform=upwork&limit=5", nil)

	handler.ListGigs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Gig `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Backend work", resp.Data[0].Title)
}

func TestGigHandler_GetGig(t *testing.T) {
	gigID := uuid.New()

	tests := []struct {
		name       string
		param      string
		setupMocks func(store *mocks.MockStore)
		wantStatus int
	}{
		{
			name:  "found",
			param: gigID.String(),
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetGig(gomock.Any(), gigID).Return(&models.Gig{ID: gigID, Title: "Backend work"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "not found",
			param: gigID.String(),
			setupMocks: func(store *mocks.MockStore) {
				store.EXPECT().GetGig(gomock.Any(), gigID).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			param:      "not-a-uuid",
			setupMocks: func(store *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, store := newGigHandler(t)
			tt.setupMocks(store)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/gigs/"+tt.param, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			handler.GetGig(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGigHandler_CreateGig(t *testing.T) {
	handler, store := newGigHandler(t)
	store.EXPECT().CreateGig(gomock.Any(), gomock.Any()).Return(nil)

	w := postJSON(t, handler.CreateGig, "/api/v1/gigs", gin.H{
		"title":           "Logo design",
		"platform":        "fiverr",
		"skills_required": []string{"figma"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var gig models.Gig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gig))
	assert.Equal(t, "Logo design", gig.Title)
	assert.Equal(t, models.PlatformFiverr, gig.Platform)
}

func TestGigHandler_CreateGigMissingTitle(t *testing.T) {
	handler, _ := newGigHandler(t)

	w := postJSON(t, handler.CreateGig, "/api/v1/gigs", gin.H{"platform": "fiverr"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGigHandler_MatchGigs(t *testing.T) {
	handler, store := newGigHandler(t)

	user := &models.User{FarcasterID: "fid-1", Skills: []string{"go"}}
	store.EXPECT().GetUser(gomock.Any(), "fid-1").Return(user, nil)
	store.EXPECT().ListGigs(gomock.Any(), database.GigFilter{}).Return([]models.Gig{
		{ID: uuid.New(), Title: "Backend work", SkillsRequired: []string{"Go"}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/fid-1/matches", nil)
	c.Params = gin.Params{{Key: "farcaster_id", Value: "fid-1"}}

	handler.MatchGigs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.GigMatch `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 100, resp.Data[0].MatchScore)
}

func TestGigHandler_MatchGigsUnknownUser(t *testing.T) {
	handler, store := newGigHandler(t)
	store.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost/matches", nil)
	c.Params = gin.Params{{Key: "farcaster_id", Value: "ghost"}}

	handler.MatchGigs(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
