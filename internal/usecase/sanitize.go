package usecase

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/recipeview/backend/internal/domain"
)

var (
	// Opening fence with an optional language tag, e.g. "```json\n"
	fenceOpenRegex = regexp.MustCompile("^```[a-zA-Z]*\n?")

	// Closing fence at the very end of the text
	fenceCloseRegex = regexp.MustCompile("```$")
)

// StripCodeFence removes a fenced code block wrapper from model output.
// Models frequently wrap JSON (and sometimes prose) in ```json ... ``` even
// when told not to; the fenced wrapper is cosmetic and always safe to drop.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = fenceOpenRegex.ReplaceAllString(cleaned, "")
	cleaned = fenceCloseRegex.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// DecodeModelJSON strips any fence wrapper from raw model output and decodes
// the remainder into v. Malformed or empty output yields ErrParseFailure so
// callers can isolate the failure to their own page section instead of
// tearing down the request.
func DecodeModelJSON(raw string, v interface{}) error {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", domain.ErrParseFailure)
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	// Models sometimes append commentary after the JSON value. The whole
	// response has to be one value, so leftover input is a parse failure.
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", domain.ErrParseFailure)
	}
	return nil
}

// DecodeModelObject is DecodeModelJSON restricted to a brace-delimited JSON
// object. Output that is valid JSON but not an object (or carries text around
// the braces) is treated as malformed rather than partially recovered.
func DecodeModelObject(raw string, v interface{}) error {
	cleaned := StripCodeFence(raw)
	if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
		return fmt.Errorf("%w: expected a JSON object, got %q", domain.ErrParseFailure, truncate(cleaned, 80))
	}
	return DecodeModelJSON(cleaned, v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
