package http

import (
	"testing"
)

type digitsProbe struct {
	NationalID string `validate:"required,digits16"`
}

type hexProbe struct {
	CustomerID string `validate:"required,hex32"`
}

func TestValidator_Digits16(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		in string
		ok bool
	}{
		{"3171234567890001", true},
		{"317123456789000", false},   // 15 digits
		{"31712345678900011", false}, // 17 digits
		{"31712345678900a1", false},  // letter
		{"3171 234567890001", false}, // space
		{"", false},
	}
	for _, tc := range cases {
		err := v.Validate(&digitsProbe{NationalID: tc.in})
		if tc.ok && err != nil {
			t.Errorf("digits16(%q): unexpected err %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("digits16(%q): expected error", tc.in)
		}
	}
}

func TestValidator_Hex32(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		in string
		ok bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"0123456789abcdef0123456789abcdef", true},
		{"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", false}, // uppercase
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},  // 31 chars
		{"", false},
	}
	for _, tc := range cases {
		err := v.Validate(&hexProbe{CustomerID: tc.in})
		if tc.ok && err != nil {
			t.Errorf("hex32(%q): unexpected err %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("hex32(%q): expected error", tc.in)
		}
	}
}

func TestToFieldErrors_ReadableMessages(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&digitsProbe{NationalID: "123"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fes := ToFieldErrors(err)
	if len(fes) != 1 {
		t.Fatalf("field errors = %d, want 1", len(fes))
	}
	if fes[0].Message != "must be exactly 16 digits" {
		t.Errorf("message = %q", fes[0].Message)
	}
}
