package main

import (
	"artregistry/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
