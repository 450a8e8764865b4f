package main

import "github.com/OpenTraceLab/routerjig/cmd/rjig/cmd"

func main() {
	cmd.Execute()
}
