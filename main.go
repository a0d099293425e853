package main

import "thoreinstein.com/hop/cmd"

func main() {
	cmd.Execute()
}
