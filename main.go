package main

import "querykeys/cmd"

func main() {
	cmd.Execute()
}
