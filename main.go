package main

import "github.com/rybkr/puzzle15/cmd"

func main() {
	cmd.Execute()
}
