package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("## Platform\n\n- end corruption\n- **jobs** for youth")
	if !strings.Contains(out, "<h2") || !strings.Contains(out, "<li>") || !strings.Contains(out, "<strong>") {
		t.Errorf("Expected rendered headings and lists, got %q", out)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script> world")
	if strings.Contains(out, "<script") {
		t.Errorf("Expected script tags to be sanitized, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected text content to survive, got %q", out)
	}
}
