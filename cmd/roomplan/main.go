package main

import "github.com/philipparndt/roomplan/cmd"

func main() {
	cmd.Execute()
}
