//go:build windows
// +build windows

// Package sysinfo - Windows-specific probes
package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")

	procGetSystemMetrics         = moduser32.NewProc("GetSystemMetrics")
	procRtlGetVersion            = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
	procCreateToolhelp32Snapshot = modkernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32FirstW          = modkernel32.NewProc("Process32FirstW")
	procProcess32NextW           = modkernel32.NewProc("Process32NextW")
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// product retrieves the full Windows product name.
//
// Returns:
//   - The product name with display version (e.g., "Windows 11 Pro 23H2")
//   - An error if the CurrentVersion registry key cannot be read
//
// Builds >= 22000 still report "Windows 10" in ProductName; those are renamed.
func product() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open CurrentVersion: %w", err)
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "", fmt.Errorf("read ProductName: %w", err)
	}
	displayVersion, _, derr := k.GetStringValue("DisplayVersion")

	var build uint32
	if _, _, b, rerr := rtlGetVersion(); rerr == nil {
		build = b
	} else if s, _, serr := k.GetStringValue("CurrentBuild"); serr == nil {
		if n, perr := strconv.Atoi(s); perr == nil {
			build = uint32(n)
		}
	}

	if build >= 22000 && strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}
	if derr == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion), nil
	}
	if build > 0 {
		return fmt.Sprintf("%s (Build %d)", productName, build), nil
	}
	return productName, nil
}

// rtlGetVersion calls ntdll.RtlGetVersion to obtain accurate Windows version info.
func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}
	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}

// shell detects the shell by looking at the parent process.
//
// Returns:
//   - The shell name with version (e.g., "PowerShell 7.4.1") or "cmd.exe"
//   - Falls back to PSModulePath, SHELL and COMSPEC detection
func shell() (string, error) {
	if parent := parentProcessName(); parent != "" {
		lower := strings.ToLower(parent)
		switch {
		case strings.Contains(lower, "pwsh"):
			return powerShellLabel("pwsh", "PowerShell Core"), nil
		case strings.Contains(lower, "powershell"):
			return powerShellLabel("powershell", "PowerShell"), nil
		case strings.Contains(lower, "cmd"):
			return "cmd.exe", nil
		case !strings.Contains(lower, "windowsterminal") && !strings.Contains(lower, "explorer"):
			return parent, nil
		}
	}

	if os.Getenv("PSModulePath") != "" {
		return powerShellLabel("powershell", "PowerShell"), nil
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, nil
	}
	if sh := os.Getenv("COMSPEC"); sh != "" {
		return sh, nil
	}
	return "cmd.exe", nil
}

// powerShellLabel returns "PowerShell <version>" or fallback if the version query fails.
func powerShellLabel(cmdName, fallback string) string {
	v, err := runPowerShellVersion(cmdName)
	if err != nil || v == "" {
		return fallback
	}
	return "PowerShell " + v
}

// parentProcessName retrieves the executable name of the parent process
// using the Toolhelp snapshot APIs. Returns "" on failure.
func parentProcessName() string {
	const TH32CS_SNAPPROCESS = 0x00000002

	type processEntry32 struct {
		dwSize              uint32
		cntUsage            uint32
		th32ProcessID       uint32
		th32DefaultHeapID   uintptr
		th32ModuleID        uint32
		cntThreads          uint32
		th32ParentProcessID uint32
		pcPriClassBase      int32
		dwFlags             uint32
		szExeFile           [260]uint16
	}

	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(uintptr(TH32CS_SNAPPROCESS), uintptr(0))
	if snapshot == 0 || snapshot == uintptr(syscall.InvalidHandle) {
		return ""
	}
	defer func() { _ = windows.CloseHandle(windows.Handle(snapshot)) }()

	// find walks the snapshot and returns the first entry matching pred.
	find := func(pred func(*processEntry32) bool) (processEntry32, bool) {
		var pe processEntry32
		pe.dwSize = uint32(unsafe.Sizeof(pe))
		ret, _, _ := procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		for ret != 0 {
			if pred(&pe) {
				return pe, true
			}
			ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		}
		return pe, false
	}

	pid := uint32(os.Getpid())
	self, ok := find(func(pe *processEntry32) bool { return pe.th32ProcessID == pid })
	if !ok || self.th32ParentProcessID == 0 {
		return ""
	}
	parent, ok := find(func(pe *processEntry32) bool { return pe.th32ProcessID == self.th32ParentProcessID })
	if !ok {
		return ""
	}
	return strings.TrimSpace(syscall.UTF16ToString(parent.szExeFile[:]))
}

// resolution retrieves the primary monitor's resolution via GetSystemMetrics.
func resolution() (string, error) {
	const (
		SM_CXSCREEN = 0
		SM_CYSCREEN = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(SM_CXSCREEN))
	height, _, _ := procGetSystemMetrics.Call(uintptr(SM_CYSCREEN))
	if width == 0 || height == 0 {
		return "", fmt.Errorf("GetSystemMetrics returned %dx%d", width, height)
	}
	return fmt.Sprintf("%dx%d", width, height), nil
}

// cpuModel prefers the CIM processor name (with physical core count), then the
// registry, then the generic gopsutil probe.
func cpuModel() (string, error) {
	var pc struct {
		Name          string
		NumberOfCores int
	}
	psCmd := "Get-CimInstance Win32_Processor | Select-Object -First 1 -Property Name,NumberOfCores | ConvertTo-Json -Compress"
	if err := runPowerShellJSON(psCmd, &pc); err == nil {
		if name := strings.TrimSpace(pc.Name); name != "" {
			if pc.NumberOfCores > 0 {
				return fmt.Sprintf("%s (%d)", name, pc.NumberOfCores), nil
			}
			return name, nil
		}
	}

	if name := registryString(`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, "ProcessorNameString"); name != "" {
		return strings.TrimSpace(name), nil
	}
	return cpuInfo()
}

// gpu retrieves the primary graphics adapter, skipping the Microsoft Basic
// Display Adapter placeholder.
func gpu() (string, error) {
	var vg struct {
		Name string
	}
	psCmd := "Get-CimInstance Win32_VideoController | Select-Object -First 1 -Property Name | ConvertTo-Json -Compress"
	if err := runPowerShellJSON(psCmd, &vg); err == nil {
		if name := strings.TrimSpace(vg.Name); name != "" && !isBasicDisplay(name) {
			return name, nil
		}
	}

	if name := gpuFromRegistry(); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("no graphics adapter found")
}

// gpuFromRegistry enumerates the display adapter class key for a driver description.
func gpuFromRegistry() string {
	classKey := `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, classKey, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return ""
	}

	for _, subkey := range subkeys {
		path := classKey + `\` + subkey
		for _, value := range []string{"DriverDesc", "Device Description", "HardwareInformation.AdapterString"} {
			if name := registryString(path, value); name != "" && !isBasicDisplay(name) {
				return name
			}
		}
	}
	return ""
}

func isBasicDisplay(name string) bool {
	return strings.Contains(strings.ToLower(name), "microsoft basic")
}

// initSystem is only shown on linux.
func initSystem() (string, error) {
	return "", errUnsupported
}

// registryString reads a string value under HKLM, returning "" on any failure.
func registryString(path, valueName string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return value
}
