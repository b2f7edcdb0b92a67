package widget

// PickerOptions describes how the hidden file picker should be configured.
type PickerOptions struct {
	// Accept lists the MIME types offered by the picker.
	Accept []string
	// CaptureCamera restricts selection to image capture via the device
	// camera.
	CaptureCamera bool
}

// PickerOptions derives the picker configuration from the widget config.
// AllowCamera narrows the picker to camera-captured images regardless of the
// allow-list.
func (w *Widget) PickerOptions() PickerOptions {
	if w.cfg.AllowCamera {
		return PickerOptions{
			Accept:        []string{"image/*"},
			CaptureCamera: true,
		}
	}
	if w.wildcard {
		return PickerOptions{Accept: []string{"*/*"}}
	}
	accept := make([]string, 0, len(w.allowed))
	for _, t := range w.cfg.AllowedTypes {
		accept = append(accept, t)
	}
	if len(accept) == 0 {
		accept = append(accept, DefaultAllowedTypes...)
	}
	return PickerOptions{Accept: accept}
}
