//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build vets, tests, and compiles the huffman command into ./bin.
func Build() error {
	mg.Deps(Vet, Test)
	fmt.Println("Building huffman executable...")
	return sh.RunV("go", "build", "-o", "./bin/huffman", "./cmd/huffman")
}

// Test runs every package's tests.
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("./bin")
}
