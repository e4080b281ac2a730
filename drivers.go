package ttyfind

import (
	"strconv"
	"strings"
)

// Range is an inclusive span of device minor numbers.
type Range struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int32) bool {
	return v >= r.Start && v <= r.End
}

// Driver describes one entry of the kernel tty driver registry
// (/proc/tty/drivers): the device path prefix it owns, its major number,
// and the minors it claims.
type Driver struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Major  int32  `json:"major"`
	Minors Range  `json:"minors"`
}

// parseMinorRange interprets the minor column of a registry line: a single
// minor ("5") or an inclusive span ("64-95"). Anything else is rejected.
func parseMinorRange(s string) (Range, bool) {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseInt(parts[0], 10, 32)
		if err != nil {
			return Range{}, false
		}
		return Range{Start: int32(v), End: int32(v)}, true
	case 2:
		lo, err := strconv.ParseInt(parts[0], 10, 32)
		if err != nil {
			return Range{}, false
		}
		hi, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return Range{}, false
		}
		return Range{Start: int32(lo), End: int32(hi)}, true
	default:
		return Range{}, false
	}
}

// parseDrivers interprets the registry text line by line. Lines with fewer
// than four whitespace-separated fields or with unparsable major/minor
// columns are skipped; everything else is kept in file order, which is the
// order the kernel registered the drivers in and the order matching relies
// on.
func parseDrivers(data []byte) []Driver {
	var drivers []Driver
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		major, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			continue
		}
		minors, ok := parseMinorRange(fields[3])
		if !ok {
			continue
		}
		drivers = append(drivers, Driver{
			Name:   fields[0],
			Path:   fields[1],
			Major:  int32(major),
			Minors: minors,
		})
	}
	return drivers
}

// matchDriver returns the first registry entry whose major equals the
// device's and whose minor range contains it. Registry order decides ties;
// entries are never re-sorted.
func matchDriver(drivers []Driver, dev DeviceNumber) (Driver, bool) {
	for _, d := range drivers {
		if d.Major == dev.Major && d.Minors.Contains(dev.Minor) {
			return d, true
		}
	}
	return Driver{}, false
}
