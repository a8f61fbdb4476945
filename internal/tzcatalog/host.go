package tzcatalog

import (
	"os"
	"strings"
)

// HostDefault returns the host's default timezone identifier: $TZ when set,
// otherwise the zone /etc/localtime links to, otherwise "UTC".
func HostDefault() string {
	return hostDefault(os.Getenv, os.Readlink)
}

func hostDefault(getenv func(string) string, readlink func(string) (string, error)) string {
	if tz := strings.TrimPrefix(getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if target, err := readlink("/etc/localtime"); err == nil {
		if i := strings.LastIndex(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}
	return "UTC"
}
