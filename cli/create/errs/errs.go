// Package errs defines typed failures of project creation. Every error is
// terminal for the current invocation.
package errs

import (
	"fmt"
	"strings"
)

// InvalidTemplateError is reported for a template id missing from the catalog.
// It is detected before any filesystem access.
type InvalidTemplateError struct {
	// ID is the requested template id.
	ID string
	// Available contains valid template ids.
	Available []string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid template %q. Available templates: %s",
		e.ID, strings.Join(e.Available, ", "))
}

// DestinationExistsError is reported if the project directory already exists.
type DestinationExistsError struct {
	// Path is the conflicting path.
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("directory %s already exists", e.Path)
}

// CopyError is reported if the template tree could not be copied.
// The destination may be left partially populated.
type CopyError struct {
	Source      string
	Destination string
	Cause       error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy template %s to %s: %s", e.Source, e.Destination, e.Cause)
}

func (e *CopyError) Unwrap() error {
	return e.Cause
}

// ManifestParseError is reported if the copied manifest is not a JSON object.
type ManifestParseError struct {
	Path  string
	Cause error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Cause)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Cause
}

// ManifestWriteError is reported if the patched manifest could not be
// serialized or written.
type ManifestWriteError struct {
	Path  string
	Cause error
}

func (e *ManifestWriteError) Error() string {
	return fmt.Sprintf("failed to update %s: %s", e.Path, e.Cause)
}

func (e *ManifestWriteError) Unwrap() error {
	return e.Cause
}
