package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard envelope for all structured CLI output.
type Response struct {
	OK       bool        `json:"ok" yaml:"ok"`
	Data     interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code" yaml:"code"`
	Message    string      `json:"message" yaml:"message"`
	Details    interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count       int   `json:"count" yaml:"count"`
	QueryTimeMs int64 `json:"query_time_ms,omitempty" yaml:"query_time_ms,omitempty"`
}

// writeResponse encodes the response in the active structured format.
func writeResponse(resp Response) {
	if effectiveFormat() == formatYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		_ = enc.Encode(resp)
		_ = enc.Close()
		return
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful response.
func outputSuccess(data interface{}, meta *Meta) {
	writeResponse(Response{
		OK:   true,
		Data: data,
		Meta: meta,
	})
}

// outputSuccessWithWarnings outputs a successful response with warnings.
func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	writeResponse(Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
		Meta:     meta,
	})
}

// outputError outputs an error response.
func outputError(code, message string, details interface{}, suggestion string) {
	writeResponse(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// isStructuredOutput returns true if JSON or YAML output is enabled.
func isStructuredOutput() bool {
	return effectiveFormat() != formatText
}

// handleError handles an error appropriately based on output mode.
// In structured mode, outputs an error envelope. In text mode, returns the
// error for Cobra.
func handleError(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), nil, suggestion)
		return nil // Don't let Cobra also print the error
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}

// handleErrorMsg handles an error message appropriately based on output mode.
func handleErrorMsg(code, message, suggestion string) error {
	return handleError(code, fmt.Errorf("%s", message), suggestion)
}
