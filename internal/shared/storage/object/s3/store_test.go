package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "report.pdf", want: "report.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "report.pdf", want: "uploads/report.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "report.pdf", want: "uploads/report.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/report.pdf", want: "uploads/report.pdf"},
		{name: "nested prefix", prefix: "uploads/incoming", key: "report.pdf", want: "uploads/incoming/report.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	if got := normalizePrefix("  /uploads/ "); got != "uploads" {
		t.Fatalf("normalizePrefix = %q, want %q", got, "uploads")
	}
	if got := normalizePrefix(""); got != "" {
		t.Fatalf("normalizePrefix empty = %q, want empty", got)
	}
}
