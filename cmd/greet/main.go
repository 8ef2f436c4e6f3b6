// Copyright (c) 2026 Greet Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command greet prints the default greeting to standard output and exits 0.
// It recognizes no flags or arguments and reads nothing from stdin.
package main

import (
	"log"
	"os"

	"greet/pkg/greeting"
)

func main() {
	if _, err := greeting.Fprint(os.Stdout); err != nil {
		log.Fatalf("Failed to write greeting: %v", err)
	}
}
