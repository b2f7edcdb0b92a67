package widget

import (
	"path"
	"strings"
)

// PreviewKind distinguishes how an accepted file should be presented.
type PreviewKind int

const (
	// PreviewImage shows the file itself through an object URL.
	PreviewImage PreviewKind = iota
	// PreviewIcon shows a generic file icon labeled with the extension.
	PreviewIcon
)

// Preview describes the accepted file's presentation.
type Preview struct {
	Kind      PreviewKind
	FileName  string
	ObjectURL string
	// IconLabel is the uppercased extension without the dot; empty when the
	// file has no extension.
	IconLabel string
}

// Display describes what the drop zone should show.
type Display struct {
	Highlighted        bool
	PlaceholderVisible bool
	Preview            *Preview
}

func placeholderDisplay() Display {
	return Display{PlaceholderVisible: true}
}

func buildPreview(f File, objectURL func(File) string) Preview {
	if strings.HasPrefix(f.MIMEType, "image/") {
		return Preview{
			Kind:      PreviewImage,
			FileName:  f.Name,
			ObjectURL: objectURL(f),
		}
	}
	return Preview{
		Kind:      PreviewIcon,
		FileName:  f.Name,
		IconLabel: extensionLabel(f.Name),
	}
}

func extensionLabel(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}
