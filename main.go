// Package main is the entry point for the tabanon CLI.
package main

import "tabanon.dev/pkg/tabanon/cmd"

func main() {
	cmd.Execute()
}
