package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(context.Background(), srv.Client(),
		option.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return c
}

func TestListFiles(t *testing.T) {
	var gotPageSize, gotFields string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPageSize = r.URL.Query().Get("pageSize")
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[
			{"id":"a1","name":"notes.txt","mimeType":"text/plain"},
			{"id":"b2","name":"deck.pptx","mimeType":"application/vnd.openxmlformats-officedocument.presentationml.presentation"}
		]}`))
	}))

	recs, err := c.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if gotPageSize != "50" {
		t.Errorf("pageSize = %q, want 50", gotPageSize)
	}
	if gotFields != "files(id, name, mimeType)" {
		t.Errorf("fields = %q", gotFields)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	want := FileRecord{ID: "a1", Name: "notes.txt", MediaType: "text/plain"}
	if recs[0] != want {
		t.Errorf("recs[0] = %+v, want %+v", recs[0], want)
	}
}

func TestListFilesEmpty(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[]}`))
	}))
	recs, err := c.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0", len(recs))
	}
}

func TestDownload(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("alt") != "media" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"a1"}`))
			return
		}
		w.Write([]byte("raw media bytes"))
	}))
	data, err := c.Download(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(data) != "raw media bytes" {
		t.Fatalf("data = %q", data)
	}
}

func TestDownloadError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)
	}))
	if _, err := c.Download(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
