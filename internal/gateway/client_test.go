package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentbridge-engine/internal/domain"
	"talentbridge-engine/internal/gateway"
)

func newClient(t *testing.T, handler http.Handler) (*gateway.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := gateway.New(gateway.Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	return c, srv
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	if _, err := gateway.New(gateway.Config{BaseURL: "not a url"}, nil); err == nil {
		t.Error("expected an error for a baseless URL")
	}
	if _, err := gateway.New(gateway.Config{BaseURL: ""}, nil); err == nil {
		t.Error("expected an error for an empty URL")
	}
}

func TestFetchJobApplications_UnwrapsEnvelope(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getJobApplications" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("companyId"); got != "C1" {
			t.Errorf("companyId = %q, want C1", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []domain.JobApplication{{ID: "A1", StudentID: "S1"}},
		})
	}))

	apps, err := c.FetchJobApplications(context.Background(), "C1")
	if err != nil {
		t.Fatalf("FetchJobApplications: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "A1" {
		t.Errorf("apps = %+v, want [A1]", apps)
	}
}

func TestFetchStudentProfile_RemoteError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"student not found"}`, http.StatusNotFound)
	}))

	_, err := c.FetchStudentProfile(context.Background(), "S9")
	re, ok := gateway.AsRemote(err)
	if !ok {
		t.Fatalf("err = %v, want *RemoteError", err)
	}
	if re.Status != http.StatusNotFound || re.Message != "student not found" {
		t.Errorf("RemoteError = %+v, want 404/student not found", re)
	}
}

func TestFetchCompanyProfile_TransportErrorIsNotRemote(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	c, err := gateway.New(gateway.Config{BaseURL: url}, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	_, err = c.FetchCompanyProfile(context.Background(), "C1")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if _, ok := gateway.AsRemote(err); ok {
		t.Errorf("transport failure classified as RemoteError: %v", err)
	}
}

func TestSubmitInvite_PassesRefusalThrough(t *testing.T) {
	var received domain.InvitePayload
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/createInvite" {
			t.Errorf("%s %s, want POST /createInvite", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&received)
		_ = json.NewEncoder(w).Encode(domain.InviteResult{Success: false, Message: "duplicate"})
	}))

	payload := domain.InvitePayload{RecipientWalletAddress: "0xstudent", Position: "Engineer"}
	res, err := c.SubmitInvite(context.Background(), payload)
	if err != nil {
		t.Fatalf("SubmitInvite: %v", err)
	}
	if res.Success || res.Message != "duplicate" {
		t.Errorf("result = %+v, want the refusal, not an error", res)
	}
	if received.RecipientWalletAddress != "0xstudent" || received.Position != "Engineer" {
		t.Errorf("backend received %+v", received)
	}
}

func TestRegister_SendsForm(t *testing.T) {
	var body map[string]string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Uregister" {
			t.Errorf("path = %s, want /Uregister", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))

	if err := c.Register(context.Background(), "a@b.edu", "pw", "MIT"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if body["email"] != "a@b.edu" || body["universityName"] != "MIT" {
		t.Errorf("backend received %v", body)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(domain.CompanyProfile{})
	}))
	t.Cleanup(srv.Close)

	c, err := gateway.New(gateway.Config{
		BaseURL: srv.URL,
		Token:   func() (string, error) { return "tok123", nil },
	}, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	if _, err := c.FetchCompanyProfile(context.Background(), "C1"); err != nil {
		t.Fatalf("FetchCompanyProfile: %v", err)
	}
	if got != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", got)
	}
}
