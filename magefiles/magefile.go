//go:build mage

// Package main provides build targets for the collectiontypes project using Mage.
//
// Usage:
//
//	mage build          Compile collectiontypes binary to bin/
//	mage test:all       Run all tests
//	mage test:cover     Run all tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage export         Build, export the catalog to bin/export, and verify it
//	mage clean          Remove build artifacts
//	mage install        Install collectiontypes to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "collectiontypes"
	binaryDir  = "bin"
	cmdDir     = "./cmd/collectiontypes"
)

// Build compiles the collectiontypes binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Export builds the binary, exports the catalog to bin/export, and verifies
// the result.
func Export() error {
	mg.Deps(Build)
	dataDir := filepath.Join(binaryDir, "export")
	configDir := filepath.Join(binaryDir, "config")
	if err := sh.RunV(binaryPath(), "export", "--data-dir", dataDir, "--config-dir", configDir); err != nil {
		return err
	}
	return sh.RunV(binaryPath(), "verify", "--data-dir", dataDir, "--config-dir", configDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
