package main

import "commander/cmd"

func main() {
	cmd.Execute()
}
