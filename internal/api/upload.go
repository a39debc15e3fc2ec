package api

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// UploadedFile describes a stored file returned by the upload endpoints
type UploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// UploadFile sends one file as multipart form data
func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader) (*UploadedFile, error) {
	var out UploadedFile
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", name, r).
		SetResult(&out).
		Post("/upload/single")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFiles sends several local files in one multipart request
func (c *Client) UploadFiles(ctx context.Context, paths []string) ([]UploadedFile, error) {
	req := c.http.R().SetContext(ctx)

	handles := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range handles {
			f.Close()
		}
	}()

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		handles = append(handles, f)
		req.SetFileReader("files", filepath.Base(p), f)
	}

	var out []UploadedFile
	resp, err := req.SetResult(&out).Post("/upload/multiple")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
