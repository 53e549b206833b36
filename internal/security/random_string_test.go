package security

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{
			name:     "negative length",
			length:   -1,
			alphabet: "abc",
			wantErr:  true,
		},
		{
			name:     "empty alphabet",
			length:   1,
			alphabet: "",
			wantErr:  true,
		},
		{
			name:     "zero length",
			length:   0,
			alphabet: "abc",
			wantErr:  false,
		},
		{
			name:     "single alphabet character",
			length:   8,
			alphabet: "X",
			wantErr:  false,
		},
		{
			name:     "normal generation",
			length:   64,
			alphabet: "ABCDEFGHJKLMNPQRSTUVWXYZ23456789",
			wantErr:  false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(test.length, test.alphabet)
			if test.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", test.length, test.alphabet)
				}
				return
			}

			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", test.length, test.alphabet, err)
			}
			if len(got) != test.length {
				t.Fatalf("RandomString(%d, %q) len = %d, want %d", test.length, test.alphabet, len(got), test.length)
			}

			for _, char := range got {
				if !strings.ContainsRune(test.alphabet, char) {
					t.Fatalf("RandomString(%d, %q) produced char %q outside alphabet", test.length, test.alphabet, char)
				}
			}
		})
	}
}

func TestRandomDigits(t *testing.T) {
	t.Parallel()

	got, err := RandomDigits(6)
	if err != nil {
		t.Fatalf("RandomDigits(6) returned error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("RandomDigits(6) len = %d, want 6", len(got))
	}
	for _, char := range got {
		if char < '0' || char > '9' {
			t.Fatalf("RandomDigits(6) produced non-digit %q", char)
		}
	}
}
