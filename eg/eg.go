// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package eg is used to test and demonstrate different aspects of the
// trace renderer. Examples double as visual correctness checks: each
// writes one or more images under out/ that can be eyeballed against
// the expected description. The examples are run using:
//
//	eg [example name]
//
// Invoking eg without parameters will list the examples that can be run.
package main

import (
	"fmt"
	"os"
)

// example combines example code with descriptions.
type example struct {
	tag         string // Example identifier.
	description string // Short description of the example.
	function    func() // Function to run the example.
}

// Launch the requested example or list available examples.
// Examples are roughly ordered from simple at the top of the list
// to more interesting at the bottom of the list.
func main() {
	examples := []example{
		{"ft", "ft: Filter weight surfaces", ft},
		{"sp", "sp: Sampler scatter plots", sp},
		{"cm", "cm: Camera ray sweeps", cm},
		{"rt", "rt: Ray trace the gallery scene", rt},
	}

	// run the first matching example.
	for _, arg := range os.Args {
		for _, eg := range examples {
			if arg == eg.tag {
				eg.function()
				os.Exit(0)
			}
		}
	}

	// print usage if nothing was run.
	fmt.Printf("Usage: eg [example]\n")
	fmt.Printf("Examples are:\n")
	for _, example := range examples {
		fmt.Printf("   %s \n", example.description)
	}
}
