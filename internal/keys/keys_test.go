package keys

import "testing"

func TestNewJoinCode_Shape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewJoinCode()
		if !ValidJoinCode(code) {
			t.Fatalf("generated code %q is not valid", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("generator produced no variety")
	}
}

func TestNormalizeJoinCode(t *testing.T) {
	if got := NormalizeJoinCode("  ab12cd34\n"); got != "AB12CD34" {
		t.Fatalf("got %q", got)
	}
}

func TestValidJoinCode(t *testing.T) {
	for _, bad := range []string{"", "ABC", "ABCD12345", "abcd1234", "ABCD 123"} {
		if ValidJoinCode(bad) {
			t.Fatalf("%q should be invalid", bad)
		}
	}
	if !ValidJoinCode("TESTCD12") {
		t.Fatalf("expected valid code")
	}
}

func TestSnapshotKey(t *testing.T) {
	if got := SnapshotKey("ABCD1234"); got != "snapshot:ABCD1234" {
		t.Fatalf("got %q", got)
	}
}
