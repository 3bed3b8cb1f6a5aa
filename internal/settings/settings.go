// Package settings is the single sanctioned path from untyped, merged JSON
// configuration into typed component fields. Every accessor looks up the
// first present key among the accepted aliases, coerces the value, clamps it
// to the supplied bounds, and falls back to the default on absence or
// coercion failure. Accessors never fail.
package settings

import (
	"math"
	"strconv"
	"strings"
)

// Settings is a merged, order-irrelevant configuration mapping. Values are
// numbers, booleans, or strings; unknown keys are ignored. The map is treated
// as read-only after Merge.
type Settings map[string]any

// IntervalFloor is the strictly positive lower bound applied to tick
// intervals to prevent division and accumulation issues.
const IntervalFloor = 0.01

// Merge layers the provided mappings into a fresh map; later layers override
// earlier ones.
func Merge(layers ...Settings) Settings {
	merged := make(Settings)
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}

func lookup(s Settings, keys []string) (any, bool) {
	if len(s) == 0 {
		return nil, false
	}
	for _, key := range keys {
		if value, ok := s[key]; ok {
			return value, true
		}
	}
	return nil, false
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Float returns the first present alias coerced to float64 and clamped to
// [min, max].
func Float(s Settings, def, min, max float64, keys ...string) float64 {
	value, ok := lookup(s, keys)
	if !ok {
		return clampFloat(def, min, max)
	}
	parsed, ok := coerceFloat(value)
	if !ok {
		return clampFloat(def, min, max)
	}
	return clampFloat(parsed, min, max)
}

// Int returns the first present alias coerced to int (rounding fractional
// numbers) and clamped to [min, max].
func Int(s Settings, def, min, max int, keys ...string) int {
	value, ok := lookup(s, keys)
	if !ok {
		return clampInt(def, min, max)
	}
	parsed, ok := coerceFloat(value)
	if !ok {
		return clampInt(def, min, max)
	}
	return clampInt(int(math.Round(parsed)), min, max)
}

// Bool returns the first present alias coerced to bool. Strings accept the
// strconv forms; numbers are true when non-zero.
func Bool(s Settings, def bool, keys ...string) bool {
	value, ok := lookup(s, keys)
	if !ok {
		return def
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return parsed
	default:
		if parsed, ok := coerceFloat(value); ok {
			return parsed != 0
		}
		return def
	}
}

// String returns the first present alias as a string.
func String(s Settings, def string, keys ...string) string {
	value, ok := lookup(s, keys)
	if !ok {
		return def
	}
	if str, ok := value.(string); ok {
		return str
	}
	return def
}

// Damage returns a non-negative integer damage amount.
func Damage(s Settings, def int, keys ...string) int {
	return Int(s, def, 0, math.MaxInt32, keys...)
}

// Interval returns a tick interval clamped to a strictly positive floor. A
// non-positive floor falls back to IntervalFloor.
func Interval(s Settings, def, floor float64, keys ...string) float64 {
	if floor <= 0 {
		floor = IntervalFloor
	}
	return Float(s, def, floor, math.MaxFloat64, keys...)
}

// Duration returns a non-negative duration in seconds.
func Duration(s Settings, def float64, keys ...string) float64 {
	return Float(s, def, 0, math.MaxFloat64, keys...)
}

// Radius returns a non-negative radius in world units.
func Radius(s Settings, def float64, keys ...string) float64 {
	return Float(s, def, 0, math.MaxFloat64, keys...)
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
