package main

import (
	"github.com/pulsemetrics/pulse/pkg/cli"
)

func main() {
	cli.Execute()
}
