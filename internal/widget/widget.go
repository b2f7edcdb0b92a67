// Package widget models the client-side upload widget: a drop zone with a
// hidden file picker that validates a single candidate file, computes its
// preview, and notifies the caller through callbacks. It is deliberately
// rendering-free; the Display value describes what a view layer should show.
package widget

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// File is the transient candidate file handed to the widget by a drop or a
// picker change. At most one candidate is live per widget at a time.
type File struct {
	Name     string
	MIMEType string
	Size     int64
	Content  io.Reader
}

// Config controls widget behavior. It is immutable after New.
type Config struct {
	// MaxFileSize is the accepted size cap in bytes; zero means unlimited.
	MaxFileSize int64
	// AllowedTypes is the MIME allow-list. The entry "*" accepts any type.
	// Nil or empty defaults to the common image types.
	AllowedTypes []string
	// AllowCamera restricts the file picker to image capture via the
	// device camera.
	AllowCamera bool
	// OnChanged fires exactly once per accepted file.
	OnChanged func(File)
	// OnError fires once per rejected file with a human-readable message.
	OnError func(File, string)
	// ObjectURLFunc creates a preview handle for image files. The default
	// synthesizes an opaque blob-style URL.
	ObjectURLFunc func(File) string
	// ReleaseURLFunc releases a preview handle when the candidate is
	// replaced or cleared.
	ReleaseURLFunc func(string)
}

// DefaultAllowedTypes is the allow-list applied when Config.AllowedTypes is
// empty.
var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "image/gif"}

// State is the widget's drag state.
type State int

const (
	// StateIdle means no drag is in progress.
	StateIdle State = iota
	// StateDragActive means a drag carrying files is over the drop zone.
	StateDragActive
)

// Widget owns the drop-zone state machine and the single candidate file.
type Widget struct {
	cfg      Config
	allowed  map[string]struct{}
	wildcard bool

	state       State
	display     Display
	selected    *File
	pickerValue string
}

// New constructs a widget from the given configuration.
func New(cfg Config) *Widget {
	types := cfg.AllowedTypes
	if len(types) == 0 {
		types = DefaultAllowedTypes
	}
	allowed := make(map[string]struct{}, len(types))
	wildcard := false
	for _, t := range types {
		if t == "*" {
			wildcard = true
		}
		allowed[t] = struct{}{}
	}
	if cfg.ObjectURLFunc == nil {
		cfg.ObjectURLFunc = func(File) string {
			return "blob:upload-widget/" + uuid.NewString()
		}
	}
	return &Widget{
		cfg:      cfg,
		allowed:  allowed,
		wildcard: wildcard,
		state:    StateIdle,
		display:  placeholderDisplay(),
	}
}

// State reports the current drag state.
func (w *Widget) State() State {
	return w.state
}

// Display reports what the drop zone should currently show.
func (w *Widget) Display() Display {
	return w.display
}

// SelectedFile returns the live candidate, if any.
func (w *Widget) SelectedFile() (File, bool) {
	if w.selected == nil {
		return File{}, false
	}
	return *w.selected, true
}

// PickerValue returns the value held by the hidden file picker. It is empty
// after a rejection.
func (w *Widget) PickerValue() string {
	return w.pickerValue
}

// DragEnter handles a drag entering the drop zone. Only drags carrying
// files activate the zone.
func (w *Widget) DragEnter(hasFiles bool) {
	if !hasFiles || w.state == StateDragActive {
		return
	}
	w.state = StateDragActive
	w.display.Highlighted = true
}

// DragLeave handles a drag leaving the drop zone without a drop.
func (w *Widget) DragLeave() {
	if w.state != StateDragActive {
		return
	}
	w.state = StateIdle
	w.display.Highlighted = false
}

// Drop handles files dropped on the zone. Only the first file is
// considered; any others are ignored.
func (w *Widget) Drop(files []File) {
	w.state = StateIdle
	w.display.Highlighted = false
	if len(files) == 0 {
		return
	}
	w.selectFile(files[0])
}

// PickerChange handles a change event from the hidden file picker. Only the
// first file is considered.
func (w *Widget) PickerChange(files []File) {
	if len(files) == 0 {
		return
	}
	w.pickerValue = files[0].Name
	w.selectFile(files[0])
}

// Clear drops the candidate and resets the display to the placeholder.
func (w *Widget) Clear() {
	w.releasePreview()
	w.selected = nil
	w.pickerValue = ""
	w.display = placeholderDisplay()
}

func (w *Widget) selectFile(f File) {
	if err := w.Validate(f); err != nil {
		if w.cfg.OnError != nil {
			w.cfg.OnError(f, err.Error())
		}
		w.Clear()
		return
	}

	// A new selection fully replaces prior display state.
	w.releasePreview()
	preview := buildPreview(f, w.cfg.ObjectURLFunc)
	w.selected = &f
	w.display = Display{
		PlaceholderVisible: false,
		Preview:            &preview,
	}
	if w.cfg.OnChanged != nil {
		w.cfg.OnChanged(f)
	}
}

func (w *Widget) releasePreview() {
	if w.display.Preview == nil || w.display.Preview.ObjectURL == "" {
		return
	}
	if w.cfg.ReleaseURLFunc != nil {
		w.cfg.ReleaseURLFunc(w.display.Preview.ObjectURL)
	}
}

// Validate checks the file against the configured size cap and MIME
// allow-list, in that order. It is pure with respect to widget state.
func (w *Widget) Validate(f File) error {
	if w.cfg.MaxFileSize > 0 && f.Size > w.cfg.MaxFileSize {
		return fmt.Errorf("%w: file is too big (%.2f MB). Max file size: %.2f MB.",
			ErrFileTooLarge, toMB(f.Size), toMB(w.cfg.MaxFileSize))
	}
	if w.wildcard {
		return nil
	}
	if _, ok := w.allowed[f.MIMEType]; !ok {
		return fmt.Errorf("%w: files of type %s are not permitted.", ErrTypeNotAllowed, f.MIMEType)
	}
	return nil
}

func toMB(bytes int64) float64 {
	return float64(bytes) / (1 << 20)
}
