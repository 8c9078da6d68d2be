// Package platform holds the OS-specific helpers the application needs:
// launch-at-login registration and the single-instance guard.
package platform

import (
	"fmt"
	"strings"
)

// EnableAutostart registers the executable to launch at login.
func EnableAutostart(appName, execPath string) error {
	if appName == "" || execPath == "" {
		return fmt.Errorf("enable autostart: app name and exec path are required")
	}
	return enableAutostart(appName, execPath)
}

// DisableAutostart removes the launch-at-login registration.
func DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is required")
	}
	return disableAutostart(appName)
}

// AutostartEnabled reports whether a launch-at-login registration exists.
func AutostartEnabled(appName string) bool {
	if appName == "" {
		return false
	}
	return autostartEnabled(appName)
}

func slugify(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
