package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"9b2d7c3e-4f1a-4b6c-8d9e-0a1b2c3d4e5f", true},
		{"9B2D7C3E-4F1A-4B6C-8D9E-0A1B2C3D4E5F", true}, // case folded
		{"0123456789abcdef0123456789abcdef", true},
		{" 0123456789abcdef0123456789abcdef ", true}, // trimmed
		{"not-a-request-id", false},
		{"0123456789abcdef0123456789abcde", false}, // 31 chars
		{"", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.in); got != tc.ok {
			t.Errorf("validReqID(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	want := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"epoch seconds", "1788145200", want, true},
		{"epoch millis", "1788145200000", want, true},
		{"rfc3339 utc", "2026-08-31T03:00:00Z", want, true},
		{"rfc3339 offset", "2026-08-31T10:00:00+07:00", want, true},
		{"naive local", "2026-08-31T03:00:00", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseRequestAt(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("err = %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if !got.Equal(tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/withdrawals", "aaaa", "bbbb")
	want := "idemp:sp:post:/withdrawals:aaaa:bbbb"
	if got != want {
		t.Errorf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHash_DiffersOnContent(t *testing.T) {
	a := bodyHash([]byte(`{"amount":100}`))
	b := bodyHash([]byte(`{"amount":200}`))
	if a == b {
		t.Error("distinct bodies hashed identically")
	}
	if a != bodyHash([]byte(`{"amount":100}`)) {
		t.Error("hash not deterministic")
	}
}
