package main

import (
	"github.com/evoaug/evoaug/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
