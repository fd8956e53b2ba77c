//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	cp "github.com/otiai10/copy"
)

const (
	goPackageName = "github.com/himself65/create-addon/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath  = "./cli"
	templatesDir = "templates"
	distPath     = "dist"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}
	goExecutableName  = "go"
	cliExecutableName = "create-addon"

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}
	os.Setenv("GO111MODULE", "on")
}

type optsUpdater func([]string) ([]string, error)

// appendLdFlags appends linker flags.
func appendLdFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		buildLdflags := make([]string, len(ldflags))
		copy(buildLdflags, ldflags)
		buildLdflags = append(buildLdflags, flags...)
		return append(append(args, "-ldflags"), strings.Join(buildLdflags, " ")), nil
	}
}

// appendFlags appends flags passed in args.
func appendFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		return append(args, flags...), nil
	}
}

// buildCli builds create-addon executable.
func buildCli(output string, argUpdaters ...optsUpdater) error {
	args := []string{"build", "-o", output}
	var err error
	for _, updateArguments := range argUpdaters {
		if args, err = updateArguments(args); err != nil {
			return err
		}
	}
	args = append(args,
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)
	if err = sh.RunWith(getBuildEnvironment(), goExecutableName, args...); err != nil {
		return fmt.Errorf("failed to build create-addon executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release create-addon executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release create-addon...")

	return buildCli(cliExecutableName, appendLdFlags("-s", "-w"))
}

// Building debug create-addon executable.
func (Build) Debug() error {
	fmt.Println("Building debug create-addon...")

	return buildCli(cliExecutableName, appendLdFlags(), appendFlags("-gcflags", "all=-N -l"))
}

// Dist lays out a distribution: dist/bin/create-addon and dist/templates.
func Dist() error {
	fmt.Println("Building create-addon distribution...")

	if err := os.RemoveAll(distPath); err != nil {
		return err
	}
	if err := buildCli(filepath.Join(distPath, "bin", cliExecutableName),
		appendLdFlags("-s", "-w")); err != nil {
		return err
	}

	excluded := map[string]bool{"node_modules": true, "build": true, "build_swift": true}
	return cp.Copy(templatesDir, filepath.Join(distPath, templatesDir), cp.Options{
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			return excluded[srcinfo.Name()], nil
		},
	})
}

type Unit mg.Namespace

func runUnitTests(flags []string) error {
	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	args = append(args, flags...)

	return sh.RunV(goExecutableName, args...)
}

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	return runUnitTests([]string{})
}

// Run unit tests with code coverage.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with code coverage...")

	if err := os.MkdirAll("coverage", 0o750); err != nil {
		return err
	}
	coverProfile := filepath.Join("coverage", "unit.out")
	if err := runUnitTests([]string{"-coverprofile", coverProfile}); err != nil {
		return err
	}
	fmt.Printf("Coverage profile is saved to %q\n", coverProfile)

	return nil
}

// Run golang linter.
func Lint() error {
	fmt.Println("Running go vet...")

	return sh.RunV(goExecutableName, "vet", "./...")
}

// Build create-addon executable and run unit tests.
func Test() {
	mg.SerialDeps(Build.Debug, Unit.Default)
}

// Clean up after build.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(cliExecutableName)
	os.RemoveAll(distPath)
	os.RemoveAll("coverage")
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
	}
}
