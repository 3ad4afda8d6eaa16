package errors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "phase and kind",
			err:  New(PhaseInvoke, KindHost).Build(),
			contains: []string{
				"[invoke]", "host",
			},
		},
		{
			name: "with command",
			err:  New(PhaseValidate, KindInvalidVariant).Cmd("plugin:window|set_size").Build(),
			contains: []string{
				"[validate]", "invalid_variant", "at plugin:window|set_size",
			},
		},
		{
			name: "with detail and cause",
			err: New(PhaseDecode, KindDecode).
				Detail("bad response").
				Cause(errors.New("unexpected end of JSON input")).
				Build(),
			contains: []string{
				"bad response", "caused by: unexpected end of JSON input",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := Host("greet", json.RawMessage(`"no such command"`))

	if !errors.Is(err, &Error{Phase: PhaseInvoke, Kind: KindHost}) {
		t.Error("expected Is match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEvent, Kind: KindHost}) {
		t.Error("expected no Is match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Transport("write frame", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}

	var structured *Error
	if !errors.As(err, &structured) {
		t.Fatal("expected errors.As to find *Error")
	}
	if structured.Phase != PhaseTransport {
		t.Errorf("Phase = %q, want %q", structured.Phase, PhaseTransport)
	}
}

func TestHost_StringPayload(t *testing.T) {
	err := Host("plugin:event|listen", json.RawMessage(`"event not allowed"`))
	if err.Detail != "event not allowed" {
		t.Errorf("Detail = %q, want unquoted string payload", err.Detail)
	}
}

func TestHost_StructuredPayload(t *testing.T) {
	raw := json.RawMessage(`{"code":404,"message":"window not found"}`)
	err := Host("plugin:window|close", raw)
	if string(err.Raw) != string(raw) {
		t.Errorf("Raw = %s, want original payload", err.Raw)
	}
	if !strings.Contains(err.Detail, "window not found") {
		t.Errorf("Detail = %q, want raw JSON preserved", err.Detail)
	}
}
