package settings

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"grocery-be/internal/apperr"
)

const DefaultThemeColor = "#16a34a"

var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var ErrInvalidColor = apperr.New(apperr.ErrInvalidInput, "invalid_color", "theme color must be a hex color like #16a34a")

// NormalizeHex validates a #RGB or #RRGGBB color and returns lowercase #rrggbb.
func NormalizeHex(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	m := hexColorRegex.FindStringSubmatch(hex)
	if m == nil {
		return "", ErrInvalidColor
	}
	digits := strings.ToLower(m[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + digits, nil
}

func HexToRGB(hex string) (r, g, b uint8, err error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	v, _ := strconv.ParseUint(norm[1:], 16, 32)
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// HexToHSL renders a hex color as "H S% L%", the form the storefront
// CSS variables expect.
func HexToHSL(hex string) (string, error) {
	r8, g8, b8, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}

	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)),
	), nil
}

// ThemeFor expands a stored color, falling back to the default on bad data.
func ThemeFor(hex string) Theme {
	norm, err := NormalizeHex(hex)
	if err != nil {
		norm = DefaultThemeColor
	}
	hsl, _ := HexToHSL(norm)
	r, g, b, _ := HexToRGB(norm)
	return Theme{
		Hex: norm,
		HSL: hsl,
		RGB: fmt.Sprintf("%d %d %d", r, g, b),
	}
}
