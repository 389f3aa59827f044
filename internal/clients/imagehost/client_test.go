package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aeroops/lostfound/pkg/config"
)

func newTestConfig(baseURL string, retryAttempts int) config.ImageHostConfig {
	return config.ImageHostConfig{
		BaseURL:       baseURL,
		APIKey:        "test-key",
		Timeout:       5 * time.Second,
		RetryAttempts: retryAttempts,
	}
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		expectError    bool
	}{
		{
			name: "successful upload",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("X-Api-Key") != "test-key" {
					t.Error("Missing api key header")
				}
				if r.Header.Get("X-Original-Content-Type") != "image/jpeg" {
					t.Error("Missing original content type header")
				}

				err := r.ParseMultipartForm(4 << 20)
				if err != nil {
					t.Errorf("Expected multipart form, got error: %v", err)
				}

				if r.FormValue("category") != "electronics" {
					t.Errorf("Expected category 'electronics', got %q", r.FormValue("category"))
				}
				if r.FormValue("flightNumber") != "AC880" {
					t.Errorf("Expected flightNumber 'AC880', got %q", r.FormValue("flightNumber"))
				}
				if len(r.MultipartForm.File["file"]) != 1 {
					t.Error("Expected one file part")
				}

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{
					"publicId": "lf/abc123",
					"url": "https://img.example/abc123",
					"thumbnailUrl": "https://img.example/abc123_t"
				}`))
			},
		},
		{
			name: "server rejects upload",
			serverResponse: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"error":"unsupported media type"}`))
			},
			expectError: true,
		},
		{
			name: "malformed response body",
			serverResponse: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewClient(newTestConfig(server.URL, 0))

			img, err := client.Upload(context.Background(),
				[]byte("fake-jpeg-bytes"), "image/jpeg", "photo.jpg", "electronics", "AC880")

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if img.PublicID != "lf/abc123" {
				t.Errorf("Expected publicId 'lf/abc123', got %q", img.PublicID)
			}

			if img.ThumbnailURL != "https://img.example/abc123_t" {
				t.Errorf("Expected thumbnail url, got %q", img.ThumbnailURL)
			}
		})
	}
}

func TestClient_Upload_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"publicId":"lf/retry","url":"u","thumbnailUrl":"t"}`))
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL, 2))

	img, err := client.Upload(context.Background(),
		[]byte("fake"), "image/png", "photo.png", "other", "AC1")
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}

	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}

	if img.PublicID != "lf/retry" {
		t.Errorf("Expected publicId 'lf/retry', got %q", img.PublicID)
	}
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		expectError bool
	}{
		{name: "deleted", statusCode: http.StatusNoContent},
		{name: "already gone", statusCode: http.StatusNotFound},
		{name: "server error", statusCode: http.StatusInternalServerError, expectError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("Expected DELETE, got %s", r.Method)
				}

				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(newTestConfig(server.URL, 0))

			err := client.Delete(context.Background(), "lf/abc123")

			if tt.expectError && err == nil {
				t.Fatal("Expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
		})
	}
}
