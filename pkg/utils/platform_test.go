//go:build !mobile

package utils

import "testing"

func TestIsMobile_Desktop(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
	}

	for _, tt := range tests {
		t.Run("JUICE_MOBILE_EMULATE="+tt.env, func(t *testing.T) {
			t.Setenv("JUICE_MOBILE_EMULATE", tt.env)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile(): got %v, want %v", got, tt.want)
			}
		})
	}
}
