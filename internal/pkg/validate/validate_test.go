package validate

import "testing"

func TestRequired(t *testing.T) {
	if Required("   ") {
		t.Fatal("whitespace is not a value")
	}
	if !Required("x") {
		t.Fatal("non-empty must pass")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"admin@gmail.com", true},
		{" admin@gmail.com ", true},
		{"admin", false},
		{"@gmail.com", false},
		{"admin@", false},
		{"admin@gmail", false},
		{"a@b@c.com", false},
		{"admin@.com", false},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Fatalf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
