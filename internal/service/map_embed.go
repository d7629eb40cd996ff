package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMapURLNotConvertible is returned when a place URL carries no coordinates
// to build an embed URL from.
var ErrMapURLNotConvertible = errors.New("could not extract coordinates from map url")

var (
	mapCoordsPattern = regexp.MustCompile(`@(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	mapPlacePattern  = regexp.MustCompile(`/place/([^/@]+)`)
)

// ConvertMapURL rewrites a shared Google Maps place URL into an embeddable
// one. Embed URLs and anything that is not a place URL pass through
// untouched; converted reports whether a rewrite happened.
func ConvertMapURL(mapURL string) (result string, converted bool, err error) {
	trimmed := strings.TrimSpace(mapURL)
	if trimmed == "" || !strings.Contains(trimmed, "maps/place/") || strings.Contains(trimmed, "maps/embed") {
		return trimmed, false, nil
	}

	coords := mapCoordsPattern.FindStringSubmatch(trimmed)
	if coords == nil {
		return trimmed, false, ErrMapURLNotConvertible
	}
	lat, lng := coords[1], coords[2]

	if place := mapPlacePattern.FindStringSubmatch(trimmed); place != nil {
		name := strings.ReplaceAll(place[1], "+", " ")
		encoded := strings.ReplaceAll(strings.ReplaceAll(name, " ", "+"), "/", "%2F")
		return fmt.Sprintf("https://www.google.com/maps?q=%s&output=embed", encoded), true, nil
	}

	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s&output=embed", lat, lng), true, nil
}
