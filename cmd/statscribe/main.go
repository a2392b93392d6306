package main

import (
	"github.com/tomecraft/statscribe/cmd/statscribe/cmd"
)

func main() {
	cmd.Execute()
}
