package i18n

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
)

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
}

func TestBaseCatalogCoversRejectionCodes(t *testing.T) {
	cat := GetCatalog("en-US")
	codes := []apperrors.Code{
		apperrors.CodePlacementCircuitLocked,
		apperrors.CodePlacementPositionTaken,
		apperrors.CodePlacementQuotaExhausted,
		apperrors.CodePositionOutOfRange,
		apperrors.CodeMovementNotAdjacent,
		apperrors.CodeMovementDestinationOccupied,
		apperrors.CodeMovementNotOwnPiece,
		apperrors.CodeWrongPhase,
		apperrors.CodeMatchEnded,
		apperrors.CodeMatchPaused,
		apperrors.CodeClockAlreadyPaused,
		apperrors.CodeClockNotPaused,
	}
	for _, code := range codes {
		if got := cat.Format(string(code), nil); got == string(code) {
			t.Fatalf("expected en-US message for %s", code)
		}
	}
}

func TestFormatQuotaMessage(t *testing.T) {
	cat := GetCatalog("en-US")
	got := cat.Format(string(apperrors.CodePlacementQuotaExhausted), map[string]string{"Player": "RED", "Max": "4"})
	want := "RED player has already placed their maximum of 4 titans!"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})
	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestMessage(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"MOVEMENT_NOT_ADJACENT": "{{.From}} to {{.To}} is too far",
	})
	err := apperrors.WithMetadata(apperrors.CodeMovementNotAdjacent, "not adjacent", map[string]string{"From": "1", "To": "4"})
	if got := cat.Message(err); got != "1 to 4 is too far" {
		t.Fatalf("Message() = %q", got)
	}
	if got := cat.Message(errors.New("plain")); got != "plain" {
		t.Fatalf("Message() = %q, want plain", got)
	}
	if got := cat.Message(nil); got != "" {
		t.Fatalf("Message(nil) = %q, want empty", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
