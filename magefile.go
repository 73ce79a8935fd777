//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bin/intracompat"

// Default target - build the binary
var Default = Build

// Build builds the intracompat binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/intracompat")
}

// Test runs all package tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and, when installed, golangci-lint
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("golangci-lint", "run", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}
		fmt.Fprintln(os.Stderr, "golangci-lint not found, skipping")
	}
	return nil
}

// QA runs lint and tests
func QA() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
