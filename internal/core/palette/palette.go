// Package palette classifies upstream question colours into a small closed
// set of display colour identifiers and derives muted variants for highlight
// rendering. Classification is an approximate, rule-ordered heuristic rather
// than a colour-space lookup; callers should treat the bucket boundaries as
// an implementation detail.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorID identifies one of the fixed display colours.
type ColorID string

// The closed set of display colours. Neutral is the fallback for missing or
// unrecognised colour values.
const (
	Blue    ColorID = "blue"
	Red     ColorID = "red"
	Green   ColorID = "green"
	Yellow  ColorID = "yellow"
	Purple  ColorID = "purple"
	Orange  ColorID = "orange"
	Pink    ColorID = "pink"
	Cyan    ColorID = "cyan"
	Neutral ColorID = "slate"
)

// DefaultLightenFactor is the blend factor used for highlight backgrounds.
const DefaultLightenFactor = 0.6

// displayHex maps each colour id to the hex value used on screen.
var displayHex = map[ColorID]string{
	Blue:    "#3B82F6",
	Red:     "#EF4444",
	Green:   "#22C55E",
	Yellow:  "#EAB308",
	Purple:  "#A855F7",
	Orange:  "#F97316",
	Pink:    "#EC4899",
	Cyan:    "#06B6D4",
	Neutral: "#64748B",
}

// All returns every display colour in a stable order, Neutral last.
func All() []ColorID {
	return []ColorID{Blue, Red, Green, Yellow, Purple, Orange, Pink, Cyan, Neutral}
}

// String returns the string representation.
func (c ColorID) String() string {
	return string(c)
}

// IsValid returns true if the colour id is one of the fixed set.
func (c ColorID) IsValid() bool {
	_, ok := displayHex[c]
	return ok
}

// Hex returns the display hex value for the colour id.
// Unknown ids render as Neutral.
func (c ColorID) Hex() string {
	if hex, ok := displayHex[c]; ok {
		return hex
	}
	return displayHex[Neutral]
}

// Classify buckets an upstream colour value into a ColorID.
// Accepts "#rrggbb" and "rgb(r,g,b)" values; anything else, including an
// empty string, classifies as Neutral. The rules are order-sensitive and
// first match wins.
func Classify(colorValue string) ColorID {
	r, g, b, ok := parseRGB(colorValue)
	if !ok {
		return Neutral
	}

	switch {
	case b > r && b > g:
		return Blue
	case r > g && r > b && r > 150:
		return Red
	case g > r && g > b && g > 100:
		return Green
	case r > 200 && g > 150 && b < 100:
		return Yellow
	case r > 100 && b > 150 && g < 100:
		return Purple
	case r > 200 && g > 100 && b < 100:
		return Orange
	case r > 200 && g < 100 && b > 100:
		return Pink
	case g > 150 && b > 150 && r < 100:
		return Cyan
	default:
		return Neutral
	}
}

// Lighten blends each channel of a hex colour toward white by factor and
// returns the result as "#rrggbb". Factor is clamped to [0,1]; a factor of 0
// returns the input unchanged and 1 yields pure white. Values that do not
// parse as hex pass through unchanged.
func Lighten(colorValue string, factor float64) string {
	c, err := colorful.Hex(strings.TrimSpace(colorValue))
	if err != nil {
		return colorValue
	}

	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	if factor == 0 {
		return colorValue
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x",
		lightenChannel(r, factor),
		lightenChannel(g, factor),
		lightenChannel(b, factor),
	)
}

// lightenChannel moves one channel toward 255 by factor.
func lightenChannel(old uint8, factor float64) uint8 {
	v := math.Round(float64(old) + (255-float64(old))*factor)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// parseRGB extracts 8-bit channels from "#rrggbb" or "rgb(r,g,b)".
func parseRGB(colorValue string) (r, g, b int, ok bool) {
	s := strings.TrimSpace(colorValue)
	if s == "" {
		return 0, 0, 0, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, 0, 0, false
		}
		cr, cg, cb := c.RGB255()
		return int(cr), int(cg), int(cb), true
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		parts := strings.Split(lower[len("rgb("):len(lower)-1], ",")
		if len(parts) != 3 {
			return 0, 0, 0, false
		}
		var vals [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return 0, 0, 0, false
			}
			vals[i] = v
		}
		return vals[0], vals[1], vals[2], true
	}

	return 0, 0, 0, false
}
