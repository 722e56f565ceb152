package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000", // uppercase accepted
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"123e4567-e89b-12d3-c456-426614174000", // invalid variant
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("012345") {
		t.Error("IsNumeric(\"012345\") = false, want true")
	}
	if IsNumeric("12a") || IsNumeric("") || IsNumeric("-1") {
		t.Error("IsNumeric accepted a non-numeric input")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "label", Message: "is required"},
		{Field: "kind", Message: "is not a valid element kind"},
	}

	if got := errs.Error(); got != "label: is required; kind: is not a valid element kind" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["label"] != "is required" || m["kind"] != "is not a valid element kind" {
		t.Errorf("ToMap() = %v", m)
	}
}
