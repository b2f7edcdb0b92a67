package util

import "testing"

func TestSanitizeBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name", input: "report.pdf", want: "report.pdf"},
		{name: "trims space", input: "  report.pdf  ", want: "report.pdf"},
		{name: "forward traversal", input: "../../etc/passwd", want: "passwd"},
		{name: "backslash traversal", input: `..\..\windows\system32`, want: "system32"},
		{name: "absolute path", input: "/var/log/app.log", want: "app.log"},
		{name: "dot only", input: ".", want: ""},
		{name: "dot dot only", input: "..", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeBaseName(tt.input); got != tt.want {
				t.Fatalf("SanitizeBaseName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		desired  string
		original string
		want     string
	}{
		{name: "missing extension gains original", desired: "report", original: "scan.pdf", want: "report.pdf"},
		{name: "original extension wins", desired: "report.txt", original: "scan.pdf", want: "report.pdf"},
		{name: "same extension kept", desired: "report.pdf", original: "scan.pdf", want: "report.pdf"},
		{name: "empty desired falls back to original", desired: "", original: "scan.pdf", want: "scan.pdf"},
		{name: "traversal reduced to base name", desired: "../../etc/passwd", original: "scan.pdf", want: "passwd.pdf"},
		{name: "original without extension keeps desired", desired: "report.txt", original: "scan", want: "report.txt"},
		{name: "both without extension", desired: "report", original: "scan", want: "report"},
		{name: "traversal in original", desired: "", original: "../scan.pdf", want: "scan.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveFileName(tt.desired, tt.original); got != tt.want {
				t.Fatalf("ResolveFileName(%q, %q) = %q, want %q", tt.desired, tt.original, got, tt.want)
			}
		})
	}
}
