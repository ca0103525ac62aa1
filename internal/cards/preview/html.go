package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var tplFS embed.FS

var cardTemplate = template.Must(
	template.New("preview").
		Funcs(template.FuncMap{"imageSrc": imageSrc}).
		ParseFS(tplFS, "templates/*.tmpl"),
)

// RenderHTML renders a card tree as an HTML fragment.
func RenderHTML(root Node) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.ExecuteTemplate(&buf, "card", root); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

// imageSrc lets inline image data and web URLs through; anything else is dropped.
func imageSrc(src string) template.URL {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "data:image/") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "http://") {
		return template.URL(src)
	}
	return ""
}
