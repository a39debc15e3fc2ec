package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type memStore struct {
	token string
}

func (s *memStore) Load() (string, error) { return s.token, nil }
func (s *memStore) Save(t string) error   { s.token = t; return nil }
func (s *memStore) Clear() error          { s.token = ""; return nil }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := &memStore{}
	return New(srv.URL, 5*time.Second, store, nil), store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	client.SetToken("secret-token")
	if _, err := client.ListCustomers(context.Background()); err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestClient_NoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	if _, err := client.ListCustomers(context.Background()); err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_LoginStoresToken(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "fresh-token",
			"user":         map[string]string{"id": "u1", "email": "staff@marina.test"},
		})
	}))

	user, err := client.Login(context.Background(), LoginRequest{Email: "staff@marina.test", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "staff@marina.test" {
		t.Errorf("user.Email = %q, want staff@marina.test", user.Email)
	}
	if client.Token() != "fresh-token" {
		t.Errorf("Token() = %q, want fresh-token", client.Token())
	}
	if store.token != "fresh-token" {
		t.Errorf("store.token = %q, want fresh-token", store.token)
	}
}

func TestClient_UnauthorizedClearsTokenAndFiresOnce(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthorized"}`))
	}))

	fired := 0
	client.OnUnauthorized(func() { fired++ })
	client.SetToken("stale-token")

	// two back-to-back 401s must only fire the callback once
	if _, err := client.ListCustomers(context.Background()); err == nil {
		t.Fatal("expected error from 401 response")
	}
	client.ListVisits(context.Background())

	if fired != 1 {
		t.Errorf("onUnauthorized fired %d times, want 1", fired)
	}
	if client.Token() != "" {
		t.Errorf("Token() = %q, want empty after 401", client.Token())
	}
	if store.token != "" {
		t.Errorf("store.token = %q, want cleared after 401", store.token)
	}
}

func TestClient_RearmedAfterNewLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthorized"}`))
	}))

	fired := 0
	client.OnUnauthorized(func() { fired++ })

	client.SetToken("first-session")
	client.ListCustomers(context.Background())
	client.SetToken("second-session")
	client.ListCustomers(context.Background())

	if fired != 2 {
		t.Errorf("onUnauthorized fired %d times, want 2 (once per session)", fired)
	}
}

func TestClient_FailedLoginDoesNotFireCallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid credentials"}`))
	}))

	fired := 0
	client.OnUnauthorized(func() { fired++ })

	_, err := client.Login(context.Background(), LoginRequest{Email: "x", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error from failed login")
	}
	if fired != 0 {
		t.Errorf("onUnauthorized fired %d times on failed login, want 0", fired)
	}
	if got := UserMessage(err); got != "Invalid credentials" {
		t.Errorf("UserMessage() = %q, want %q", got, "Invalid credentials")
	}
}

func TestClient_ErrorMessageParsing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single message", `{"message": "Dock not found"}`, "Dock not found"},
		{"message array", `{"message": ["email must be an email", "rating must not be greater than 5"]}`, "email must be an email; rating must not be greater than 5"},
		{"error field only", `{"error": "Bad Request"}`, "Bad Request"},
		{"unparseable body", `<html>oops</html>`, "Operation failed"},
		{"empty body", ``, "Operation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))

			_, err := client.ListDocks(context.Background(), "", "")
			if err == nil {
				t.Fatal("expected error from 400 response")
			}
			if got := UserMessage(err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_FilterQueryParams(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
		path string
		want map[string]string
	}{
		{
			name: "pending service requests",
			call: func(c *Client) error { _, err := c.PendingServiceRequests(context.Background()); return err },
			path: "/service-requests",
			want: map[string]string{"status": "PENDING"},
		},
		{
			name: "available docks",
			call: func(c *Client) error { _, err := c.AvailableDocks(context.Background()); return err },
			path: "/docks",
			want: map[string]string{"available": "true"},
		},
		{
			name: "unreviewed feedback",
			call: func(c *Client) error { _, err := c.UnreviewedFeedback(context.Background()); return err },
			path: "/feedback",
			want: map[string]string{"unreviewed": "true"},
		},
		{
			name: "maintenance due assets",
			call: func(c *Client) error { _, err := c.MaintenanceDueAssets(context.Background()); return err },
			path: "/assets",
			want: map[string]string{"maintenanceDue": "true"},
		},
		{
			name: "customer search",
			call: func(c *Client) error { _, err := c.SearchCustomers(context.Background(), "smith"); return err },
			path: "/customers",
			want: map[string]string{"search": "smith"},
		},
		{
			name: "cost forecast window",
			call: func(c *Client) error { _, err := c.PredictMaintenanceCosts(context.Background(), 6); return err },
			path: "/maintenance/predict-costs",
			want: map[string]string{"months": "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotQuery map[string]string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = map[string]string{}
				for k := range r.URL.Query() {
					gotQuery[k] = r.URL.Query().Get(k)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("[]"))
			}))

			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if gotPath != tt.path {
				t.Errorf("path = %q, want %q", gotPath, tt.path)
			}
			for k, want := range tt.want {
				if gotQuery[k] != want {
					t.Errorf("query[%q] = %q, want %q", k, gotQuery[k], want)
				}
			}
		})
	}
}

func TestClient_LoadsSavedTokenOnStartup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	store := &memStore{token: "persisted"}
	client := New(srv.URL, 5*time.Second, store, nil)

	if client.Token() != "persisted" {
		t.Errorf("Token() = %q, want persisted", client.Token())
	}
}

func TestClient_UploadFileSendsMultipart(t *testing.T) {
	var gotPath, gotField, gotName, gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile(file) error = %v", err)
		}
		defer f.Close()
		gotField = "file"
		gotName = hdr.Filename
		body, _ := io.ReadAll(f)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"filename":"receipt.pdf","url":"/files/receipt.pdf","size":9}`))
	}))

	out, err := client.UploadFile(context.Background(), "receipt.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}

	if gotPath != "/upload/single" {
		t.Errorf("path = %q, want /upload/single", gotPath)
	}
	if gotField != "file" || gotName != "receipt.pdf" || gotBody != "pdf bytes" {
		t.Errorf("multipart part = (%q, %q, %q), want (file, receipt.pdf, pdf bytes)", gotField, gotName, gotBody)
	}
	if out.URL != "/files/receipt.pdf" {
		t.Errorf("URL = %q, want /files/receipt.pdf", out.URL)
	}
}

func TestClient_UploadFilesSendsAllParts(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	for _, p := range paths {
		if err := os.WriteFile(p, []byte("contents of "+filepath.Base(p)), 0o600); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", p, err)
		}
	}

	var gotPath string
	var gotNames []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		for _, hdr := range r.MultipartForm.File["files"] {
			gotNames = append(gotNames, hdr.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"filename":"a.txt"},{"filename":"b.txt"}]`))
	}))

	out, err := client.UploadFiles(context.Background(), paths)
	if err != nil {
		t.Fatalf("UploadFiles() error = %v", err)
	}

	if gotPath != "/upload/multiple" {
		t.Errorf("path = %q, want /upload/multiple", gotPath)
	}
	if len(gotNames) != 2 || gotNames[0] != "a.txt" || gotNames[1] != "b.txt" {
		t.Errorf("files parts = %v, want [a.txt b.txt]", gotNames)
	}
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2", len(out))
	}
}
