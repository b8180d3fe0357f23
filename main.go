package main

import (
	"github.com/routinely/routinely/cmd"
)

func main() {
	cmd.Execute()
}
