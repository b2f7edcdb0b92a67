package widget

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// Entry pairs a file with the name the user wants it stored under. An empty
// DesiredName lets the server fall back to the original file name.
type Entry struct {
	File        File
	DesiredName string
}

// Submitter posts accepted files to the upload endpoint following the form
// contract: file parts are named file_<n> and each is paired with a text
// field file_name_<n> carrying the desired stored name.
type Submitter struct {
	Endpoint string
	Client   *http.Client
}

// Submit uploads the entries and returns the endpoint's plain-text response
// body, one line per file.
func (s *Submitter) Submit(ctx context.Context, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no files to submit")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, e := range entries {
		part, err := createFilePart(writer, fmt.Sprintf("file_%d", i), e.File)
		if err != nil {
			return "", fmt.Errorf("create file part: %w", err)
		}
		if e.File.Content != nil {
			if _, err := io.Copy(part, e.File.Content); err != nil {
				return "", fmt.Errorf("write file part: %w", err)
			}
		}
		if err := writer.WriteField(fmt.Sprintf("file_name_%d", i), e.DesiredName); err != nil {
			return "", fmt.Errorf("write name field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit upload: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload endpoint returned status %d", resp.StatusCode)
	}
	return string(data), nil
}

// createFilePart mirrors multipart.Writer.CreateFormFile but carries the
// file's MIME type instead of a fixed octet-stream.
func createFilePart(w *multipart.Writer, field string, f File) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, escapeQuotes(f.Name)))
	contentType := f.MIMEType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

func escapeQuotes(s string) string {
	r := strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
	return r.Replace(s)
}
