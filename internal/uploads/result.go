package uploads

import (
	"html"
	"strings"
)

// Result is the outcome for one submitted file.
type Result struct {
	OK         bool
	StoredName string
	Message    string
	// Failed marks transport or storage errors, as opposed to validation
	// rejections.
	Failed bool
}

// renderLines produces the plain-text response body: one HTML-escaped line
// per result, in submission order, each terminated by a line break.
func renderLines(results []Result) string {
	var b strings.Builder
	for _, res := range results {
		b.WriteString(html.EscapeString(res.Message))
		b.WriteString("\n")
	}
	return b.String()
}
