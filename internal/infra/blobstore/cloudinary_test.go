package blobstore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsroom-cms/internal/resilience/retry"
)

func testStore(t *testing.T, handler http.HandlerFunc) *CloudinaryStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCloudinaryStore(CloudinaryConfig{
		CloudName:    "newsroom",
		UploadPreset: "articles",
		Folder:       "articles",
		APIKey:       "key",
		APISecret:    "secret",
		Timeout:      2 * time.Second,
		BaseURL:      server.URL,
	})
}

func TestCloudinaryUpload(t *testing.T) {
	var gotPreset, gotFolder, gotFile string
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/newsroom/image/upload" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")
		if fhs := r.MultipartForm.File["file"]; len(fhs) == 1 {
			gotFile = fhs[0].Filename
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.example/img.png","public_id":"articles/img"}`))
	})

	ref, err := store.Upload(context.Background(), strings.NewReader("png-bytes"), "img.png")
	if err != nil {
		t.Fatalf("Upload err=%v", err)
	}
	if ref.URL != "https://res.cloudinary.example/img.png" || ref.Key != "articles/img" {
		t.Fatalf("ref = %+v", ref)
	}
	if gotPreset != "articles" || gotFolder != "articles" || gotFile != "img.png" {
		t.Fatalf("form fields preset=%q folder=%q file=%q", gotPreset, gotFolder, gotFile)
	}
}

func TestCloudinaryUploadRejected(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"preset not found"}}`, http.StatusBadRequest)
	})

	_, err := store.Upload(context.Background(), strings.NewReader("x"), "img.png")
	var httpErr *retry.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("want HTTPError 400, got %v", err)
	}
}

func TestCloudinaryUploadMissingFields(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := store.Upload(context.Background(), strings.NewReader("x"), "img.png")
	if err == nil {
		t.Fatal("want error on empty response")
	}
}

func TestCloudinaryDeleteSignsRequest(t *testing.T) {
	var form map[string][]string
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/newsroom/image/destroy" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		form = r.PostForm
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})

	if err := store.Delete(context.Background(), "articles/img"); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	for _, field := range []string{"public_id", "timestamp", "api_key", "signature"} {
		if len(form[field]) != 1 || form[field][0] == "" {
			t.Errorf("missing destroy field %s", field)
		}
	}
	ts := form["timestamp"][0]
	want := store.sign("public_id=articles/img&timestamp=" + ts)
	if form["signature"][0] != want {
		t.Errorf("signature = %s, want %s", form["signature"][0], want)
	}
}

func TestCloudinaryDeleteFailure(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	if err := store.Delete(context.Background(), "articles/gone"); err == nil {
		t.Fatal("want error on non-200 destroy")
	}
}
