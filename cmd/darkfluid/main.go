package main

import "github.com/darkfluid/darkfluid/cmd/darkfluid/cmd"

func main() {
	cmd.Execute()
}
