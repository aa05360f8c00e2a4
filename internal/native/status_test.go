package native

import "testing"

// lastStatus is CAIRO_STATUS_LAST_STATUS for the mirrored release.
const lastStatus = 38

func TestStatusStringNonEmpty(t *testing.T) {
	for code := int32(0); code < lastStatus; code++ {
		if got := StatusString(code); got == "" {
			t.Errorf("StatusString(%d) is empty", code)
		}
	}
}

func TestStatusStringStable(t *testing.T) {
	for code := int32(0); code < lastStatus; code++ {
		first := StatusString(code)
		if again := StatusString(code); again != first {
			t.Errorf("StatusString(%d) = %q then %q", code, first, again)
		}
	}
}

func TestStatusStringKnownText(t *testing.T) {
	// These strings have been stable across every cairo release.
	tests := []struct {
		code int32
		want string
	}{
		{0, "no error has occurred"},
		{1, "out of memory"},
		{4, "no current point"},
		{18, "file not found"},
	}
	for _, tt := range tests {
		if got := StatusString(tt.code); got != tt.want {
			t.Errorf("StatusString(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Version() is empty")
	}
}
