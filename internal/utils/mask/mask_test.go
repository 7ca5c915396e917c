package mask_test

import (
	"testing"

	"payment-gateway/internal/utils/mask"
)

func TestCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full pan", "4111111111111111", "4111****1111"},
		{"exactly eight", "12345678", "1234****5678"},
		{"too short", "123", "****"},
		{"seven chars", "1234567", "****"},
		{"empty", "", "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.CardNumber(tt.input); got != tt.want {
				t.Errorf("CardNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"long key", "abcdefghijklmnop", "abcdef...mnop"},
		{"exactly ten", "abcdefghij", "abcdef...ghij"},
		{"too short", "short", "****"},
		{"nine chars", "abcdefghi", "****"},
		{"empty", "", "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.APIKey(tt.input); got != tt.want {
				t.Errorf("APIKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
