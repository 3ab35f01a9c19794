package main

import (
	"typedcsv/cmd/typedcsv/cmd"
)

func main() {
	cmd.Execute()
}
