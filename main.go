package main

import "github.com/Rorical/arraykit/cmd"

func main() {
	cmd.Execute()
}
