package main

import "github.com/itsmostafa/threador/cmd"

func main() {
	cmd.Execute()
}
