package security

import "testing"

func TestValidateStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets policy", "Abcdef1!", true},
		{"missing upper digit special", "abcdefgh", false},
		{"too short", "Ab1!", false},
		{"missing special", "Abcdefg1", false},
		{"missing digit", "Abcdefg!", false},
		{"missing lower", "ABCDEFG1!", false},
		{"empty", "", false},
		{"long with all classes", "Tr0ub4dor&3xtra-long", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateStrength(tc.password); got != tc.want {
				t.Fatalf("ValidateStrength(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	first := Fingerprint("Abcdef1!")
	second := Fingerprint("Abcdef1!")
	if first != second {
		t.Fatalf("expected identical fingerprints, got %q and %q", first, second)
	}
}

func TestFingerprintSensitiveToSingleCharacter(t *testing.T) {
	// Not guaranteed by the scheme, but any collision between these two
	// inputs would indicate the accumulator is broken, not unlucky.
	if Fingerprint("Abcdef1!") == Fingerprint("Abcdef2!") {
		t.Fatalf("expected differing fingerprints for differing inputs")
	}
}

func TestFingerprintOrderSensitive(t *testing.T) {
	if Fingerprint("ab") == Fingerprint("ba") {
		t.Fatalf("expected order-sensitive fingerprints")
	}
}

func TestFingerprintEmptyInput(t *testing.T) {
	if got := Fingerprint(""); got != "0" {
		t.Fatalf("expected zero fingerprint for empty input, got %q", got)
	}
}
