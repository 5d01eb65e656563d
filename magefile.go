//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "glossa"

// Default target to run when none is specified
var Default = Build

// Build compiles the glossa binary into the repository root
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/glossa")
}

// Install installs glossa into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/glossa")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs the tests that talk to the real translation endpoint
func Integration() error {
	return sh.RunWithV(map[string]string{"GLOSSA_INTEGRATION": "1"}, "go", "test", "-run", "Integration", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All vets, tests and builds
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
