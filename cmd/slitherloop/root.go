package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "slitherloop",
	Short: "Count Slitherlink solutions on a rectangular grid",
}

func init() {
	rootCmd.AddCommand(countCmd)
}
