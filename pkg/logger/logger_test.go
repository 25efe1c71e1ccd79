package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestModuleField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf).Module("room")
	log.Info().Str(RoleField, "white").Msg("hello")

	out := buf.String()
	for _, want := range []string{`"m":"room"`, `"message":"hello"`, `"role":"white"`} {
		if !strings.Contains(out, want) {
			t.Errorf("no %v in %v", want, out)
		}
	}
}

func TestNop(t *testing.T) {
	if l := Nop().GetLevel(); l != Disabled {
		t.Errorf("nop level is %v", l)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "trace"},
		{DebugLevel, "debug"},
		{InfoLevel, "info"},
		{ErrorLevel, "error"},
		{Disabled, "disabled"},
		{NoLevel, ""},
	}
	for _, test := range tests {
		if got := test.level.String(); got != test.want {
			t.Errorf("level %d: got %q, want %q", test.level, got, test.want)
		}
	}
}
