package texttoolkit

import "testing"

func TestIsSpace(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		if !IsSpace(c) {
			t.Errorf("IsSpace(%q) = false", c)
		}
	}
	for _, c := range []byte{'a', '0', '.', 0} {
		if IsSpace(c) {
			t.Errorf("IsSpace(%q) = true", c)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		if !IsDigit(c) {
			t.Errorf("IsDigit(%q) = false", c)
		}
	}
	for _, c := range []byte{'a', 'A', '/', ':', ' '} {
		if IsDigit(c) {
			t.Errorf("IsDigit(%q) = true", c)
		}
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		if !IsHexDigit(c) {
			t.Errorf("IsHexDigit(%q) = false", c)
		}
	}
	for _, c := range []byte{'g', 'G', '/', ':', '@', '`', ' '} {
		if IsHexDigit(c) {
			t.Errorf("IsHexDigit(%q) = true", c)
		}
	}
}
