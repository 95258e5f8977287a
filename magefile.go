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
)

const (
	goPackageName = "github.com/stampcli/stamp/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
	}
	goExecutableName    = "go"
	stampExecutableName = "stamp"

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	if goExe := os.Getenv("GOEXE"); goExe != "" {
		goExecutableName = goExe
	}
	if stampExe := os.Getenv("STAMPEXE"); stampExe != "" {
		stampExecutableName = stampExe
		return
	}
	absPath, err := filepath.Abs(stampExecutableName)
	if err != nil {
		panic(err)
	}
	stampExecutableName = absPath
}

// buildStamp builds stamp executable with extra linker flags.
func buildStamp(extraLdflags ...string) error {
	linkerFlags := append(append([]string{}, ldflags...), extraLdflags...)
	args := []string{
		"build", "-o", stampExecutableName,
		"-ldflags", strings.Join(linkerFlags, " "),
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath,
	}
	if err := sh.RunWith(buildEnv(), goExecutableName, args...); err != nil {
		return fmt.Errorf("failed to build stamp executable: %s", err)
	}
	return nil
}

type Build mg.Namespace

// Build release stamp executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release stamp...")
	return buildStamp("-s", "-w")
}

// Build stamp executable with debug info.
func (Build) Debug() error {
	fmt.Println("Building debug stamp...")
	return buildStamp()
}

// Run golangci-lint.
func Lint() error {
	fmt.Println("Running golangci-lint...")
	return sh.RunV("golangci-lint", "run")
}

type Unit mg.Namespace

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")
	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	return sh.RunV(goExecutableName, append(args, "./...")...)
}

// Run linter and unit tests.
func Test() {
	mg.SerialDeps(Lint, Unit.Default)
}

// Remove built executable.
func Clean() {
	fmt.Println("Cleaning directory...")
	os.Remove(stampExecutableName)
}

// buildEnv returns build environment variables referenced by the flags.
func buildEnv() map[string]string {
	env := map[string]string{
		"PACKAGE":     goPackageName,
		"CGO_ENABLED": "0",
	}
	if currentDir, err := os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	} else {
		env["PWD"] = currentDir
	}
	if _, err := exec.LookPath("git"); err == nil {
		env["GIT_TAG"], _ = sh.Output("git", "describe", "--tags")
		env["GIT_COMMIT"], _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}
	return env
}
