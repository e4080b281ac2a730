package http

import (
	"errors"
	"strconv"
	"strings"
)

var errBadPID = errors.New("invalid pid")

// parsePID parses a pid path parameter. Signed values are accepted so the
// resolver's sentinel handling stays reachable over HTTP; anything
// non-numeric is rejected before the pipeline runs.
func parsePID(s string) (int, error) {
	pid, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errBadPID
	}
	return pid, nil
}
