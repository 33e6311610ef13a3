package util

import (
	"fmt"
	"regexp"
)

// hexColor matches a #-prefixed 3- or 6-digit hexadecimal color value.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that a color is a #-prefixed hex value as
// accepted by the theme engine (e.g. "#1890ff" or "#18f").
func ValidateHexColor(color string) error {
	if color == "" {
		return fmt.Errorf("color cannot be empty")
	}
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color %q is not a valid hex color (expected #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidateBorderRadius checks that a corner radius is within the range
// the theme engine renders sensibly.
func ValidateBorderRadius(radius int) error {
	if radius < 0 {
		return fmt.Errorf("border radius must be non-negative, got %d", radius)
	}
	if radius > 32 {
		return fmt.Errorf("border radius must be at most 32, got %d", radius)
	}
	return nil
}
