// Command jewelshop runs the jewelry pattern showcase and the storefront demo.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
