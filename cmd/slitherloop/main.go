// Command slitherloop counts Slitherlink solutions on a rectangular
// grid, optionally rendering or independently verifying each one it
// finds.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
