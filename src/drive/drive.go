// Package drive wraps the Google Drive v3 API surface this application
// uses: one bounded listing call and per-file media download.
package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// ListPageSize bounds the listing to a single page.
const ListPageSize = 50

// FileRecord identifies one provider object. Immutable, sourced
// directly from the listing response.
type FileRecord struct {
	ID        string
	Name      string
	MediaType string
}

// Client issues Drive API calls on behalf of one authenticated user.
type Client struct {
	svc *drive.Service
}

// NewClient builds a Drive client from an OAuth2-authorized HTTP
// client. Extra options are mainly for tests (endpoint override).
func NewClient(ctx context.Context, hc *http.Client, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithHTTPClient(hc)}, opts...)
	svc, err := drive.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListFiles returns up to ListPageSize file records. An empty Drive is
// not an error.
func (c *Client) ListFiles(ctx context.Context) ([]FileRecord, error) {
	res, err := c.svc.Files.List().
		PageSize(ListPageSize).
		Fields("files(id, name, mimeType)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	recs := make([]FileRecord, 0, len(res.Files))
	for _, f := range res.Files {
		recs = append(recs, FileRecord{ID: f.Id, Name: f.Name, MediaType: f.MimeType})
	}
	return recs, nil
}

// Download fetches the raw media bytes for a file. The whole body is
// buffered; callers classify afterwards.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("fetching file %s: %w", id, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", id, err)
	}
	return data, nil
}
