package main

import "github.com/oshokin/initgen/cmd/initgen/cmd"

func main() {
	cmd.Execute()
}
