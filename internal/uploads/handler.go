package uploads

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"upload-backend/internal/shared/metrics"
	"upload-backend/internal/shared/server/respond"
	"upload-backend/internal/shared/storage/object"
	"upload-backend/internal/shared/telemetry"
	"upload-backend/internal/shared/util"
)

const (
	// maxFilesPerRequest bounds how many files one submission may carry,
	// used only to cap the request body.
	maxFilesPerRequest = 20
	formOverheadBytes  = 1 << 20

	filePartPrefix  = "file_"
	namePartPrefix  = "file_name_"
	defaultMaxBytes = 2 << 20
)

// UploadConfig is the endpoint's validation policy, passed in explicitly so
// deployments and tests can override the defaults.
type UploadConfig struct {
	MaxBytes     int64
	AllowedTypes map[string]struct{}
}

// NewUploadConfig builds an UploadConfig from a size cap and a type list.
// Zero or negative maxBytes falls back to the 2 MiB default; an empty list
// keeps the allow-list empty (rejecting everything), matching an explicit
// but misconfigured deployment.
func NewUploadConfig(maxBytes int64, allowedTypes []string) UploadConfig {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	return UploadConfig{MaxBytes: maxBytes, AllowedTypes: allowed}
}

// Handler serves the upload endpoint.
type Handler struct {
	Cfg   UploadConfig
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(cfg UploadConfig, store object.ObjectStore) *Handler {
	return &Handler{Cfg: cfg, Store: store}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
	rg.GET("/uploads/:name", h.download)
}

// upload processes a multipart submission. Each file is validated and
// persisted independently; the response carries one line per file in
// submission order.
func (h *Handler) upload(c *gin.Context) {
	batchID := uuid.NewString()
	c.Set("uploadBatchId", batchID)

	bodyCap := h.Cfg.MaxBytes*maxFilesPerRequest + formOverheadBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyCap)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart form", nil)
		return
	}

	parts := collectFileParts(form)
	if len(parts) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no files submitted", nil)
		return
	}

	results := make([]Result, 0, len(parts))
	for _, p := range parts {
		res := h.processFile(c.Request.Context(), p.header, desiredName(form, p.index))
		h.record(batchID, p.header, res)
		results = append(results, res)
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(renderLines(results)))
}

type filePart struct {
	index  int
	header *multipart.FileHeader
}

// collectFileParts gathers file_<n> parts in ascending n, preserving the
// client's submission order.
func collectFileParts(form *multipart.Form) []filePart {
	var parts []filePart
	for key, headers := range form.File {
		if !strings.HasPrefix(key, filePartPrefix) || strings.HasPrefix(key, namePartPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(key, filePartPrefix))
		if err != nil || len(headers) == 0 {
			continue
		}
		parts = append(parts, filePart{index: n, header: headers[0]})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].index < parts[j].index })
	return parts
}

// desiredName reads the paired file_name_<n> text field, derived from the
// file field by prefix substitution.
func desiredName(form *multipart.Form, index int) string {
	values := form.Value[fmt.Sprintf("%s%d", namePartPrefix, index)]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// processFile validates and persists one file. Failures are reported as
// result lines and never abort sibling files.
func (h *Handler) processFile(ctx context.Context, fh *multipart.FileHeader, desired string) Result {
	displayName := util.SanitizeBaseName(fh.Filename)
	if displayName == "" {
		displayName = "file"
	}

	f, err := fh.Open()
	if err != nil {
		return Result{Failed: true, Message: fmt.Sprintf("%s could not be uploaded (%v).", displayName, err)}
	}
	defer f.Close()

	contentType := partContentType(fh)
	if _, ok := h.Cfg.AllowedTypes[contentType]; !ok {
		return Result{Message: fmt.Sprintf("%s: files of type %s are not permitted.", displayName, contentType)}
	}

	if fh.Size > h.Cfg.MaxBytes {
		return Result{Message: fmt.Sprintf("%s is too big (%.2f MB). Max file size: %.2f MB.",
			displayName, toMB(fh.Size), toMB(h.Cfg.MaxBytes))}
	}

	finalName := util.ResolveFileName(desired, fh.Filename)
	storedName, _, _, err := h.Store.Save(ctx, finalName, f)
	if err != nil {
		return Result{Failed: true, Message: fmt.Sprintf("%s could not be stored (%v).", finalName, err)}
	}

	return Result{
		OK:         true,
		StoredName: storedName,
		Message:    fmt.Sprintf("%s uploaded successfully.", storedName),
	}
}

func (h *Handler) record(batchID string, fh *multipart.FileHeader, res Result) {
	fields := map[string]any{
		"upload_batch_id": batchID,
		"file_name":       fh.Filename,
		"size_bytes":      fh.Size,
		"content_type":    partContentType(fh),
	}
	if res.OK {
		fields["stored_name"] = res.StoredName
		metrics.IncUploadAccepted()
		metrics.ObserveUploadSizeBytes(float64(fh.Size))
		telemetry.Info("upload.accepted", fields)
		return
	}
	fields["reason"] = res.Message
	if res.Failed {
		metrics.IncUploadFailed()
		telemetry.Error("upload.failed", fields)
		return
	}
	metrics.IncUploadRejected()
	telemetry.Warn("upload.rejected", fields)
}

// download streams a stored file back. Serving a file by its exact stored
// name is a passthrough to the store, not an index.
func (h *Handler) download(c *gin.Context) {
	name := c.Param("name")

	rc, err := h.Store.Open(c.Request.Context(), name)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func partContentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

func toMB(bytes int64) float64 {
	return float64(bytes) / (1 << 20)
}
