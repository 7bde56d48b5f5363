//go:build linux
// +build linux

package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// initSystem returns the name of PID 1 (systemd, openrc-init, runit, ...).
func initSystem() (string, error) {
	b, err := os.ReadFile("/proc/1/comm")
	if err != nil {
		return "", fmt.Errorf("read pid 1 name: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// xrandrCurrent matches the active mode marker in xrandr output, e.g. "1920x1080 60.00*+".
var xrandrCurrent = regexp.MustCompile(`(\d+x\d+)\s+[\d.]+\*`)

// resolution returns the preferred mode of the first connected DRM output,
// falling back to the current xrandr mode.
func resolution() (string, error) {
	if res := drmResolution("/sys/class/drm"); res != "" {
		return res, nil
	}

	out, err := runCommand("xrandr", "--current")
	if err != nil {
		return "", err
	}
	if m := xrandrCurrent.FindStringSubmatch(out); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("xrandr: no active mode")
}

// drmResolution scans <root>/*/status for a connected output and returns the
// first line of its modes file. Returns "" if nothing is connected.
func drmResolution(root string) string {
	statuses, err := filepath.Glob(filepath.Join(root, "*", "status"))
	if err != nil {
		return ""
	}

	for _, status := range statuses {
		b, err := os.ReadFile(status)
		if err != nil || strings.TrimSpace(string(b)) != "connected" {
			continue
		}

		f, err := os.Open(filepath.Join(filepath.Dir(status), "modes"))
		if err != nil {
			continue
		}
		sc := bufio.NewScanner(f)
		var mode string
		if sc.Scan() {
			mode = strings.TrimSpace(sc.Text())
		}
		_ = f.Close()

		if mode != "" {
			return mode
		}
	}
	return ""
}
