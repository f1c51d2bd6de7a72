package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.NamespaceMessages("en-US", "game")); got == 0 {
		t.Fatalf("expected en-US game namespace messages")
	}
}

func TestLocalesDefineSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s is missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/game.yaml"), `locale: "en-US"
namespace: "game"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/errors.yaml"), `locale: "en-US"
namespace: "errors"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/game.yaml"), `locale: "pt-BR"
namespace: "game"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/game.yaml"), `locale: "pt-BR"
namespace: "game"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestParseCatalogFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "stray line", data: "\"a\": \"b\"\n"},
		{name: "missing namespace", data: "locale: \"en-US\"\nmessages:\n  \"a\": \"b\"\n"},
		{name: "unterminated key", data: "locale: \"en-US\"\nnamespace: \"game\"\nmessages:\n  \"a: \"b\"\n"},
		{name: "missing separator", data: "locale: \"en-US\"\nnamespace: \"game\"\nmessages:\n  \"a\" \"b\"\n"},
		{name: "no messages", data: "locale: \"en-US\"\nnamespace: \"game\"\nmessages:\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCatalogFile([]byte(tt.data)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	resolved, messages := bundle.NamespaceMessagesWithFallback("fr-FR", "errors")
	if resolved != "en-US" {
		t.Fatalf("resolved locale = %q, want en-US", resolved)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback errors namespace messages")
	}
}

func TestPrinterUsesRegisteredMessages(t *testing.T) {
	p := Default().Printer("en-US")
	if got := p.Sprintf("game.winner", "Red", 12); got != "Red player wins with 12 points!" {
		t.Fatalf("Sprintf = %q", got)
	}
	pt := Default().Printer("pt-BR")
	if got := pt.Sprintf("game.tie", 3); got != "Empate! Ambos os jogadores têm 3 pontos." {
		t.Fatalf("Sprintf = %q", got)
	}
	fallback := Default().Printer("xx-YY")
	if got := fallback.Sprintf("game.over"); got != "Game Over!" {
		t.Fatalf("Sprintf = %q", got)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
