package rawkey

import "testing"

func TestRuler(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{11, "0123456789*"},
		{5, "0123*"},
		{1, "*"},
		{13, "012345678901*"},
	}
	for _, tc := range tests {
		if got := ruler(tc.width); got != tc.want {
			t.Errorf("ruler(%d) = %q, want %q", tc.width, got, tc.want)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RAWKEY_TEST_COLUMNS", "132")
	if got := getEnv("RAWKEY_TEST_COLUMNS", 80); got != 132 {
		t.Errorf("getEnv = %d, want 132", got)
	}
	t.Setenv("RAWKEY_TEST_COLUMNS", "bogus")
	if got := getEnv("RAWKEY_TEST_COLUMNS", 80); got != 80 {
		t.Errorf("getEnv with bogus value = %d, want fallback 80", got)
	}
	if got := getEnv("RAWKEY_TEST_UNSET", 24); got != 24 {
		t.Errorf("getEnv unset = %d, want fallback 24", got)
	}
}
