// Package videoid extracts canonical YouTube video identifiers from user
// input. Resolution is pure string parsing with no network access.
package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoVideoID means no identifier could be extracted from the input.
var ErrNoVideoID = errors.New("no video id found in input")

var bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// Resolve returns the video identifier for a bare ID, a youtu.be short
// link, or a youtube.com watch URL. Bare identifiers (alphanumeric, `_`,
// `-`, at least 6 characters) pass through unchanged.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if bareIDPattern.MatchString(input) {
		return input, nil
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", ErrNoVideoID
	}

	host := parsed.Hostname()
	if strings.HasSuffix(host, "youtu.be") {
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrNoVideoID
	}
	if strings.Contains(host, "youtube") {
		if id := parsed.Query().Get("v"); id != "" {
			return id, nil
		}
	}

	return "", ErrNoVideoID
}
