package main

import (
	"os"

	"github.com/hashicorp-forge/restkit/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
