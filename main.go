package main

import "github.com/deltadev/sga/cmd"

func main() {
	cmd.Execute()
}
