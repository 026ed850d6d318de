package main

import "github.com/rentdb/rentdb/cmd/rentdb/command"

func main() {
	command.Execute()
}
