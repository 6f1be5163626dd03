package main

import "linkdir/cmd/linkdir-cli/cmd"

func main() {
	cmd.Execute()
}
