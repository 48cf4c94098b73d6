package dcc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matching with errors.Is
var (
	ErrNotFound            = errors.New("executable not found")
	ErrUnsupportedPlatform = errors.New("platform not supported")
	ErrUnknownApp          = errors.New("unknown application")
)

// NotFoundError reports that no candidate path existed on the filesystem.
// Tried lists every path that was probed, in the order it was probed.
type NotFoundError struct {
	App      App
	Platform string
	Tried    []string
}

func (e *NotFoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s not found on %s", e.App.DisplayName(), e.Platform)
	if len(e.Tried) > 0 {
		sb.WriteString(", searched:")
		for _, p := range e.Tried {
			sb.WriteString("\n  ")
			sb.WriteString(p)
		}
	}
	return sb.String()
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedPlatformError reports that the (app, platform) pair has no
// entry in the candidate table. Returned before any filesystem access.
type UnsupportedPlatformError struct {
	App      App
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s is not supported on %s", e.App.DisplayName(), e.Platform)
}

func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// UnknownAppError reports input that does not name a supported application
type UnknownAppError struct {
	Name string
}

func (e *UnknownAppError) Error() string {
	names := make([]string, 0, len(Apps()))
	for _, a := range Apps() {
		names = append(names, a.String())
	}
	return fmt.Sprintf("unknown application %q (supported: %s)", e.Name, strings.Join(names, ", "))
}

func (e *UnknownAppError) Is(target error) bool {
	return target == ErrUnknownApp
}
