package main

import "github.com/Technical-1/etb-cli/cmd"

func main() {
	cmd.Execute()
}
