// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the granary project using Mage.
//
// Usage:
//
//	mage build      Compile granary binary to bin/
//	mage test       Run all tests
//	mage testUnit   Run fast tests, skipping the disk-backed store suite
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install granary to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "granary"
	binaryDir  = "bin"
	cmdDir     = "./cmd/granary"
)

// Build compiles the granary binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestUnit runs only the fast tests; suites that hit the filesystem or the
// SQLite database skip themselves in short mode.
func TestUnit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
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
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
