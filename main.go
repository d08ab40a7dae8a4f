// Package main is the entry point for the zipup CLI.
package main

import "zipup.dev/pkg/zipup/cmd"

func main() {
	cmd.Execute()
}
