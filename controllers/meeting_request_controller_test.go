package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"radost_server/models"
	"radost_server/routes"
	"radost_server/services"

	"github.com/gorilla/mux"
)

func setupRequests(t *testing.T) (*httptest.Server, *services.MemoryStore) {
	t.Helper()
	store := services.NewMemoryStore()
	requestService := &services.MeetingRequestService{Store: store, Notifier: services.NopNotifier{}}

	r := mux.NewRouter()
	routes.RegisterMeetingRequestRoutes(r, requestService)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(body)
	resp, err := srv.Client().Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestMeetingRequestLifecycleOverHTTP(t *testing.T) {
	srv, store := setupRequests(t)
	seedUser(t, store, "alice")
	seedUser(t, store, "bob")

	// Create
	resp := postJSON(t, srv, "/api/meeting-requests", map[string]interface{}{
		"fromUserId": "alice",
		"toUserId":   "bob",
		"method":     models.MethodQRCode,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: status = %d, want 200", resp.StatusCode)
	}
	var created struct {
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	// Duplicate pending for the same ordered pair conflicts.
	resp = postJSON(t, srv, "/api/meeting-requests", map[string]interface{}{
		"fromUserId": "alice",
		"toUserId":   "bob",
		"method":     models.MethodQRCode,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate create: status = %d, want 409", resp.StatusCode)
	}

	// Pending list for the recipient carries the requester profile.
	resp2, err := srv.Client().Get(srv.URL + "/api/meeting-requests/pending/bob")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	var pending []models.MeetingRequest
	if err := json.NewDecoder(resp2.Body).Decode(&pending); err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].FromUser == nil || pending[0].FromUser.Nickname != "alice" {
		t.Fatalf("pending = %+v, want one enriched request from alice", pending)
	}

	// Sender cannot confirm.
	resp = postJSON(t, srv, "/api/meeting-requests/"+created.RequestID+"/confirm", map[string]string{"userId": "alice"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("confirm by sender: status = %d, want 403", resp.StatusCode)
	}

	// Recipient confirms.
	resp = postJSON(t, srv, "/api/meeting-requests/"+created.RequestID+"/confirm", map[string]string{"userId": "bob"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("confirm: status = %d, want 200", resp.StatusCode)
	}

	// Unknown request id is a 404.
	resp = postJSON(t, srv, "/api/meeting-requests/nope/reject", map[string]string{"userId": "bob"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("reject unknown: status = %d, want 404", resp.StatusCode)
	}
}
