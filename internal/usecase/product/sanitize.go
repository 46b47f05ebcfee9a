package product

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

var escapes = []struct{ raw, entity string }{
	{"'", "&#39;"},
	{`"`, "&quot;"},
	{"<", "&lt;"},
	{">", "&gt;"},
}

var knownEntities = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#39;"}

// Sanitize strips tag-like fragments and escapes characters that are
// unsafe in downstream renderers. It never fails, passes empty input
// through unchanged and is idempotent.
func Sanitize(input string) string {
	if input == "" {
		return input
	}
	input = tagPattern.ReplaceAllString(input, "")
	for _, e := range escapes {
		input = strings.ReplaceAll(input, e.raw, e.entity)
	}
	return escapeAmpersands(input)
}

// escapeAmpersands rewrites bare ampersands to &amp; while leaving
// entities inserted by earlier passes intact. The ampersand must be
// handled last and entity-aware, otherwise the entities themselves
// would be corrupted.
func escapeAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			b.WriteByte(s[i])
			continue
		}
		if entity := entityAt(s[i:]); entity != "" {
			b.WriteString(entity)
			i += len(entity) - 1
			continue
		}
		b.WriteString("&amp;")
	}
	return b.String()
}

func entityAt(s string) string {
	for _, entity := range knownEntities {
		if strings.HasPrefix(s, entity) {
			return entity
		}
	}
	return ""
}
