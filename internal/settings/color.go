package settings

import "strconv"

// RGBA is a normalized color value parsed from "#rrggbb" or "#rrggbbaa"
// strings. Alpha defaults to opaque when omitted.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Color returns the first present alias parsed as a hex color, falling back
// to the default on absence or malformed input.
func Color(s Settings, def RGBA, keys ...string) RGBA {
	value, ok := lookup(s, keys)
	if !ok {
		return def
	}
	str, ok := value.(string)
	if !ok {
		return def
	}
	parsed, ok := parseHexColor(str)
	if !ok {
		return def
	}
	return parsed
}

func parseHexColor(str string) (RGBA, bool) {
	if len(str) == 0 || str[0] != '#' {
		return RGBA{}, false
	}
	hex := str[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, false
	}
	parsed, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return RGBA{}, false
	}
	color := RGBA{A: 0xff}
	if len(hex) == 8 {
		color.A = uint8(parsed & 0xff)
		parsed >>= 8
	}
	color.B = uint8(parsed & 0xff)
	color.G = uint8((parsed >> 8) & 0xff)
	color.R = uint8((parsed >> 16) & 0xff)
	return color, true
}
