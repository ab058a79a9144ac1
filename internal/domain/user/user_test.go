package user

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Jane@Example.COM":      "jane@example.com",
		"  jane@example.com \n": "jane@example.com",
		"":                      "",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
