package traverse

import (
	"errors"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{InvalidConfig, "InvalidConfig"},
		{NilAutomaton, "NilAutomaton"},
		{GenerationLimit, "GenerationLimit"},
		{ErrorKind(42), "UnknownErrorKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	err := &Error{Kind: GenerationLimit, Message: "generation limit exceeded after 17 generations"}
	if !errors.Is(err, ErrGenerationLimit) {
		t.Error("errors with the same kind should match")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("errors with different kinds should not match")
	}
	if errors.Is(err, errors.New("generation limit exceeded")) {
		t.Error("foreign error types should not match")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
