// Package main is the entry point for the hardlit CLI.
package main

import "gooze.dev/pkg/hardlit/cmd"

func main() {
	cmd.Execute()
}
