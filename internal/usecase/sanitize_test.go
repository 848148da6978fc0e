package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/recipeview/backend/internal/domain"
)

func TestStripCodeFence(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fence with language tag",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "fence without language tag",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "no fence is untouched",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n```json\n{\"a\":1}\n```  ",
			want:  `{"a":1}`,
		},
		{
			name:  "plain text passes through",
			input: "This meal is rich in omega-3.",
			want:  "This meal is rich in omega-3.",
		},
		{
			name:  "fenced plain text is unwrapped",
			input: "```\nThis meal is rich in omega-3.\n```",
			want:  "This meal is rich in omega-3.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StripCodeFence(tc.input)
			if got != tc.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeModelJSON(t *testing.T) {
	t.Run("decodes fenced JSON", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelJSON("```json\n{\"a\": 1}\n```", &out)
		if err != nil {
			t.Fatalf("DecodeModelJSON() error = %v, want nil", err)
		}
		if len(out) != 1 {
			t.Fatalf("len(out) = %d, want 1", len(out))
		}
		if n, ok := out["a"].(json.Number); !ok || n.String() != "1" {
			t.Errorf("out[\"a\"] = %v, want 1", out["a"])
		}
	})

	t.Run("non-JSON text is a parse failure", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelJSON("not json", &out)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelJSON() error = %v, want ErrParseFailure", err)
		}
	})

	t.Run("empty response is a parse failure", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelJSON("```json\n```", &out)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelJSON() error = %v, want ErrParseFailure", err)
		}
	})

	t.Run("trailing prose after the JSON is a parse failure", func(t *testing.T) {
		var amounts domain.StepAmountMap
		err := DecodeModelJSON("{\"1\": {\"salt\": \"1 tsp\"}}\nHope this helps!", &amounts)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelJSON() error = %v, want ErrParseFailure", err)
		}
	})

	t.Run("trailing brace after the JSON is a parse failure", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelJSON(`{"a": 1}}`, &out)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelJSON() error = %v, want ErrParseFailure", err)
		}
	})

	t.Run("decodes into step amount map", func(t *testing.T) {
		raw := "```json\n{\"1\": {\"salmon\": \"1 lb\"}, \"3\": {\"salt\": \"a pinch\"}}\n```"

		var amounts domain.StepAmountMap
		err := DecodeModelJSON(raw, &amounts)
		if err != nil {
			t.Fatalf("DecodeModelJSON() error = %v, want nil", err)
		}
		if amounts["1"]["salmon"] != "1 lb" {
			t.Errorf("amounts[1][salmon] = %q, want %q", amounts["1"]["salmon"], "1 lb")
		}
		if _, ok := amounts["2"]; ok {
			t.Error("step 2 should be absent")
		}
	})
}

func TestDecodeModelObject(t *testing.T) {
	t.Run("accepts a brace-delimited object", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelObject(`{"total_cost": 12.5}`, &out)
		if err != nil {
			t.Fatalf("DecodeModelObject() error = %v, want nil", err)
		}
	})

	t.Run("rejects a JSON array", func(t *testing.T) {
		var out interface{}
		err := DecodeModelObject(`[1, 2]`, &out)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelObject() error = %v, want ErrParseFailure", err)
		}
	})

	t.Run("rejects prose around the braces", func(t *testing.T) {
		var out map[string]interface{}
		err := DecodeModelObject(`Here you go: {"a": 1}`, &out)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("DecodeModelObject() error = %v, want ErrParseFailure", err)
		}
	})
}
