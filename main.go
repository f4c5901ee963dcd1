// Package main is the entry point for the scanconv CLI.
package main

import "scanconv.dev/pkg/scanconv/cmd"

func main() {
	cmd.Execute()
}
