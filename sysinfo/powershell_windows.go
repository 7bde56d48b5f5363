//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and the window hidden.
func runPowerShell(name, cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := exec.CommandContext(ctx, name, "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func runPowerShellJSON(cmd string, v interface{}) error {
	out, err := runPowerShell("powershell", cmd, commandTimeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("decode powershell output: %w", err)
	}
	return nil
}

// runPowerShellVersion asks the given PowerShell binary ("pwsh" or
// "powershell") for $PSVersionTable.PSVersion.
func runPowerShellVersion(name string) (string, error) {
	out, err := runPowerShell(name, "$PSVersionTable.PSVersion.ToString()", 800*time.Millisecond)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
