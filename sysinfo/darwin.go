//go:build darwin
// +build darwin

package sysinfo

import (
	"fmt"
	"regexp"
	"strings"
)

var displayResolution = regexp.MustCompile(`Resolution:\s*(\d+)\s*x\s*(\d+)`)

// resolution parses the first display resolution reported by system_profiler.
func resolution() (string, error) {
	out, err := runCommand("system_profiler", "SPDisplaysDataType")
	if err != nil {
		return "", err
	}
	m := displayResolution.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("system_profiler: no display resolution")
	}
	return m[1] + "x" + m[2], nil
}

// initSystem returns the name of PID 1 (launchd on macOS).
func initSystem() (string, error) {
	out, err := runCommand("ps", "-p", "1", "-o", "comm=")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "/sbin/"), nil
}
