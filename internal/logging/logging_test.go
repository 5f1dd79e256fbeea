package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	if err := Setup("warn", "json", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("unexpected output %s", out)
	}

	buf.Reset()
	if err := Setup("info", "console", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info().Msg("pretty")
	if !strings.Contains(buf.String(), "pretty") || strings.Contains(buf.String(), `"message"`) {
		t.Fatalf("expected console output, got %s", buf.String())
	}

	if err := Setup("info", "xml", &buf); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := Setup("loud", "json", &buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
