// Package builtin_templates contains the catalog of addon templates shipped
// with create-addon.
package builtin_templates

import (
	"errors"
	"fmt"
)

// ManifestName is a name of the package manifest patched after copying a template.
const ManifestName = "package.json"

// ExcludedNames contains base names of template entries that are never copied.
// A match at any depth prunes the whole subtree.
var ExcludedNames = [...]string{"node_modules", "build", "build_swift"}

// ErrNotFound is returned for a template id missing from the catalog.
var ErrNotFound = errors.New("template is not found")

// Template describes an addon template.
type Template struct {
	// ID is a stable template identifier. It is used on the command line
	// and as the template directory name.
	ID string
	// DisplayName is a human-readable template name.
	DisplayName string
	// Description is a one-line template description.
	Description string
	// Icon is shown in front of the template in the selection list.
	Icon string
}

// templates are listed in the order they are offered to the user.
var templates = [...]Template{
	{
		ID:          "cpp-linux",
		DisplayName: "cpp-linux",
		Description: "C++ addon for Linux platforms",
		Icon:        "🐧",
	},
	{
		ID:          "cpp-win32",
		DisplayName: "cpp-win32",
		Description: "C++ addon for Windows platforms",
		Icon:        "🪟",
	},
	{
		ID:          "objective-c",
		DisplayName: "objective-c",
		Description: "Objective-C addon for macOS",
		Icon:        "🍎",
	},
	{
		ID:          "swift",
		DisplayName: "swift",
		Description: "Swift addon for macOS",
		Icon:        "🦉",
	},
}

// Templates returns all built-in templates in declaration order.
func Templates() []Template {
	list := make([]Template, len(templates))
	copy(list, templates[:])
	return list
}

// Names returns built-in template ids in declaration order.
func Names() []string {
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, template.ID)
	}
	return names
}

// Find returns the template with the id.
func Find(id string) (Template, error) {
	for _, template := range templates {
		if template.ID == id {
			return template, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// IsExcluded checks whether an entry with the base name is skipped on copy.
func IsExcluded(baseName string) bool {
	for _, name := range ExcludedNames {
		if name == baseName {
			return true
		}
	}
	return false
}
