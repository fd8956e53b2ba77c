package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "create-addon"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalize turns a git tag like "v1.2.0-3-gabcdef" into "1.2.0".
// Tags that are not versions are returned as is.
func normalize(tag string) string {
	normalizedVersion, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	var versionStrNumbers []string
	for _, num := range normalizedVersion.Segments() {
		versionStrNumbers = append(versionStrNumbers, strconv.Itoa(num))
	}
	return strings.Join(versionStrNumbers, ".")
}

// GetVersion return string with create-addon version info.
func GetVersion(showShort bool, needCommit bool) string {
	var version string

	if gitTag == "" {
		version = unknownVersion
	} else {
		version = normalize(gitTag)
		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	if showShort || needCommit {
		if needCommit {
			return fmt.Sprintf("%s.%s", version, gitCommit)
		}

		return version
	}

	return fmt.Sprintf(
		"%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit,
	)
}
