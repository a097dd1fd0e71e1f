package shared

import "testing"

func TestWipeByteArray(t *testing.T) {
	b := []byte("s3cret-pass")
	WipeByteArray(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not wiped: %q", i, c)
		}
	}

	WipeByteArray(nil)
}
