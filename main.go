package main

import "sassmon/cmd"

func main() {
	cmd.Execute()
}
