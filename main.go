package main

import "github.com/UCLALibrary/ftva-mams-data/cmd"

func main() {
	cmd.Execute()
}
