package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#16a34a", "142 76% 36%"},
		{"#ff0000", "0 100% 50%"},
		{"#0000FF", "240 100% 50%"},
		{"#fff", "0 0% 100%"},
		{"000000", "0 0% 0%"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#1234", "green", "#gggggg"} {
		_, err := NormalizeHex(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestThemeFor_FallsBackToDefault(t *testing.T) {
	theme := ThemeFor("not-a-color")
	assert.Equal(t, DefaultThemeColor, theme.Hex)
	assert.Equal(t, "142 76% 36%", theme.HSL)
	assert.Equal(t, "22 163 74", theme.RGB)
}

func TestToAdminView_MasksSecrets(t *testing.T) {
	s := &Settings{
		SiteName:         "Fresh Mart",
		ThemeColor:       "#16a34a",
		CourierAPIKey:    "abcdef123456",
		FraudCheckAPIKey: "abc",
	}

	v := ToAdminView(s)
	assert.Equal(t, "********3456", v.CourierAPIKey)
	assert.Equal(t, "***", v.FraudCheckAPIKey)
	assert.Equal(t, "", v.WhatsAppToken)
	assert.Equal(t, "Fresh Mart", v.SiteName)
}
