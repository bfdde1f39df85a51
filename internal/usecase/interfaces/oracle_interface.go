package interfaces

import (
	"context"
	"fmt"
)

// ITextOracle abstracts the external text-generation service that turns
// prompts into (nominally) schema-conforming output.
//
// The orchestrator uses GenerateStructured for the final line-item plan
// call, constrained by a JSON schema the oracle is asked (but not
// guaranteed) to honor, and GenerateText for the condensation-mode
// extraction and merge calls.
type ITextOracle interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// OracleError carries the upstream HTTP status of a failed oracle call.
// The status is set once at the gateway boundary; callers branch on it
// with errors.As instead of re-deriving it from message substrings.
type OracleError struct {
	StatusCode int
	Message    string
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle call failed with status %d: %s", e.StatusCode, e.Message)
}
