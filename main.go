package main

import (
	"github.com/quill-labs/stacks-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
