package main

import "github.com/brogergvhs/ficgrab/cmd"

func main() {
	cmd.Execute()
}
