package main

import (
	cmd "github.com/getzep/animalfacts/cmd/animalfacts"
)

func main() {
	cmd.Execute()
}
