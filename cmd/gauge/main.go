// cmd/gauge/main.go
package main

import (
	cmd "github.com/mwiater/gauge/internal/commands"
)

// main starts the gauge CLI application by delegating to the cobra
// root command defined in the gauge package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}
