package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "+639171234567", want: "639171234567"},
		{raw: "00639171234567", want: "639171234567"},
		{raw: "639171234567", want: "639171234567"},
		{raw: "09171234567", want: "639171234567"},
		{raw: "9171234567", want: "639171234567"},
		{raw: " 0917-123-4567 ", want: "639171234567"},
		{raw: "+63 (917) 123 4567", want: "639171234567"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"12345",
		"+19171234567",
		"0917123456",
		"091712345678",
		"0817123456x",
		"08171234567",
		"63917+1234567",
		"9171٢٣٤",
		"0917١٢٣٤٥٦٧",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(raw)
			assert.Error(t, err)
		})
	}
}
