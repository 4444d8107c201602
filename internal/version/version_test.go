package version

import (
	"strings"
	"testing"
)

// stripANSI drops CSI escape sequences so the assertion holds whether or
// not fatih/color decided the test environment supports color.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestVersionCarriesNumber(t *testing.T) {
	if Number == "" {
		t.Fatal("Number is empty")
	}
	if got := stripANSI(Version); !strings.HasPrefix(got, Number) {
		t.Errorf("Version %q does not start with Number %q", got, Number)
	}
}
