package http

import (
	"strings"
	"testing"
)

type hexBody struct {
	ID string `validate:"required,hex32"`
}

type decisionBody struct {
	Decision string `validate:"required,decision"`
}

func TestValidator_Hex32(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&hexBody{ID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("valid hex32 rejected: %v", err)
	}
	for _, bad := range []string{"", "xyz", strings.Repeat("A", 32), strings.Repeat("a", 31)} {
		if err := cv.Validate(&hexBody{ID: bad}); err == nil {
			t.Fatalf("hex32 accepted %q", bad)
		}
	}
}

func TestValidator_Decision(t *testing.T) {
	cv := NewValidator()

	for _, ok := range []string{"approved", "rejected", "counter_offered"} {
		if err := cv.Validate(&decisionBody{Decision: ok}); err != nil {
			t.Fatalf("decision %q rejected: %v", ok, err)
		}
	}
	if err := cv.Validate(&decisionBody{Decision: "maybe"}); err == nil {
		t.Fatalf("invalid decision accepted")
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&hexBody{ID: "nope"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	out := ToFieldErrors(err)
	if len(out) != 1 || out[0].Field != "ID" {
		t.Fatalf("unexpected field errors: %+v", out)
	}
	if !strings.Contains(out[0].Message, "hex") {
		t.Fatalf("message = %q, want hex hint", out[0].Message)
	}
}
