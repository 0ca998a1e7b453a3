package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmusat/eurovote/internal/models"
	"github.com/tmusat/eurovote/internal/service"
	"github.com/tmusat/eurovote/internal/store"
)

const adminKey = "admin-key"

// setupTestServer builds an API server over seeded in-memory stores.
func setupTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	users := store.New[models.User]()
	users.Add(models.User{Username: "root", PIN: 1234, ProfilePicture: 1, IsAdmin: true, APIKey: adminKey})
	users.Add(models.User{Username: "viewer", PIN: 5678, ProfilePicture: 2, APIKey: "viewer-key"})

	participants := store.New[models.Participant]()
	participants.Add(models.Participant{ID: 1, Year: 2026, Country: "Sweden", Name: "A", RoundNum: 1, Turn: 2})
	participants.Add(models.Participant{ID: 2, Year: 2026, Country: "Italy", Name: "B", RoundNum: 1, Turn: 1})
	participants.Add(models.Participant{ID: 3, Year: 2026, Country: "Norway", Name: "C", RoundNum: 2, Turn: 1})

	api := New(
		service.NewUserService(users),
		service.NewParticipantService(participants),
		service.NewReviewService(store.New[models.Review]()),
	)

	ts := httptest.NewServer(api.Handler())
	return ts, ts.Close
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decoding GET %s response: %v", url, err)
		}
	}
}

func postJSON(t *testing.T, url string, body any, wantStatus int, v any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decoding POST %s response: %v", url, err)
		}
	}
}

func TestListUsersProjection(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	var got []map[string]any
	getJSON(t, ts.URL+"/api/v1/user/all", http.StatusOK, &got)

	if len(got) != 2 {
		t.Fatalf("listed %d users, want 2", len(got))
	}
	// Only the public fields may leave.
	for _, u := range got {
		if _, leaked := u["pin"]; leaked {
			t.Error("user listing leaks the pin")
		}
		if _, leaked := u["apikey"]; leaked {
			t.Error("user listing leaks the apikey")
		}
		if _, ok := u["username"]; !ok {
			t.Error("user listing missing username")
		}
		if _, ok := u["profile_picture"]; !ok {
			t.Error("user listing missing profile_picture")
		}
	}
}

func TestAddUser(t *testing.T) {
	tests := []struct {
		name       string
		actorKey   string
		user       models.User
		wantStatus int
	}{
		{"admin adds novel user", adminKey, models.User{Username: "carol", PIN: 9}, http.StatusOK},
		{"non-admin is rejected", "viewer-key", models.User{Username: "carol", PIN: 9}, http.StatusUnauthorized},
		{"unknown key is rejected", "nope", models.User{Username: "carol", PIN: 9}, http.StatusUnauthorized},
		{"duplicate username conflicts", adminKey, models.User{Username: "viewer", PIN: 9}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, cleanup := setupTestServer(t)
			defer cleanup()

			url := fmt.Sprintf("%s/api/v1/user/add_user/%s", ts.URL, tt.actorKey)
			postJSON(t, url, tt.user, tt.wantStatus, nil)

			var listed []map[string]any
			getJSON(t, ts.URL+"/api/v1/user/all", http.StatusOK, &listed)
			wantCount := 2
			if tt.wantStatus == http.StatusOK {
				wantCount = 3
			}
			if len(listed) != wantCount {
				t.Errorf("store holds %d users, want %d", len(listed), wantCount)
			}
		})
	}
}

func TestGetUserByKey(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	var got map[string]any
	getJSON(t, ts.URL+"/api/v1/user/user/"+adminKey, http.StatusOK, &got)
	if got["username"] != "root" || got["isAdmin"] != true || got["apikey"] != adminKey {
		t.Errorf("unexpected user payload: %v", got)
	}

	getJSON(t, ts.URL+"/api/v1/user/user/unknown", http.StatusNotFound, nil)
}

func TestLoginEndpoint(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	var hit struct {
		APIKey *string `json:"apikey"`
	}
	postJSON(t, ts.URL+"/api/v1/user/login", map[string]any{"username": "viewer", "pin": 5678}, http.StatusOK, &hit)
	if hit.APIKey == nil || *hit.APIKey != "viewer-key" {
		t.Errorf("login hit returned %v, want viewer-key", hit.APIKey)
	}

	var miss struct {
		APIKey *string `json:"apikey"`
	}
	postJSON(t, ts.URL+"/api/v1/user/login", map[string]any{"username": "viewer", "pin": 1}, http.StatusOK, &miss)
	if miss.APIKey != nil {
		t.Errorf("login miss returned %q, want null", *miss.APIKey)
	}
}

func TestParticipantRoutes(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	var all []models.Participant
	getJSON(t, ts.URL+"/api/v1/participant/all", http.StatusOK, &all)
	if len(all) != 3 {
		t.Errorf("listed %d participants, want 3", len(all))
	}

	// Round listing is sorted by turn.
	var round []models.Participant
	getJSON(t, ts.URL+"/api/v1/participant/round/1", http.StatusOK, &round)
	if len(round) != 2 || round[0].ID != 2 || round[1].ID != 1 {
		t.Errorf("round lineup = %+v, want Italy before Sweden", round)
	}

	getJSON(t, ts.URL+"/api/v1/participant/round/3", http.StatusNotFound, nil)

	var sweden models.Participant
	getJSON(t, ts.URL+"/api/v1/participant/Sweden", http.StatusOK, &sweden)
	if sweden.ID != 1 {
		t.Errorf("participant by country ID = %d, want 1", sweden.ID)
	}

	getJSON(t, ts.URL+"/api/v1/participant/France", http.StatusNotFound, nil)
}

func TestReviewFlow(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	submit := func(userID, melody, performance, wardrobe int) {
		t.Helper()
		postJSON(t, ts.URL+"/api/v1/review/add_review", models.Review{
			UserID: userID, CountryID: 2, RoundNum: 1,
			Melody: melody, Performance: performance, Wardrobe: wardrobe,
		}, http.StatusOK, nil)
	}

	submit(1, 10, 10, 10)
	submit(2, 4, 4, 4)

	var mean struct {
		MeanScore *float64 `json:"mean_score"`
	}
	getJSON(t, ts.URL+"/api/v1/review/mean/1/2", http.StatusOK, &mean)
	if mean.MeanScore == nil || *mean.MeanScore != 7.0 {
		t.Errorf("mean_score = %v, want 7.0", mean.MeanScore)
	}

	// Resubmission replaces instead of appending.
	submit(1, 4, 4, 4)
	var all []models.Review
	getJSON(t, ts.URL+"/api/v1/review/all", http.StatusOK, &all)
	if len(all) != 2 {
		t.Errorf("store holds %d reviews, want 2", len(all))
	}

	var summary models.Scores
	getJSON(t, ts.URL+"/api/v1/review/1/1/2", http.StatusOK, &summary)
	if summary != (models.Scores{Melody: 4, Performance: 4, Wardrobe: 4}) {
		t.Errorf("summary = %+v, want the resubmitted scores", summary)
	}

	// Absent triple yields the zero-filled default, not a 404.
	var absent models.Scores
	getJSON(t, ts.URL+"/api/v1/review/9/1/9", http.StatusOK, &absent)
	if absent != (models.Scores{}) {
		t.Errorf("absent summary = %+v, want zero triple", absent)
	}

	// No data means null, not 0.
	var noData struct {
		MeanScore *float64 `json:"mean_score"`
	}
	getJSON(t, ts.URL+"/api/v1/review/mean/3/9", http.StatusOK, &noData)
	if noData.MeanScore != nil {
		t.Errorf("mean of no data = %v, want null", *noData.MeanScore)
	}

	// Out-of-range scores are rejected before the store.
	postJSON(t, ts.URL+"/api/v1/review/add_review", models.Review{
		UserID: 1, CountryID: 2, RoundNum: 1, Melody: 11, Performance: 4, Wardrobe: 4,
	}, http.StatusUnprocessableEntity, nil)
}
