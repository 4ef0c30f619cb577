package main

import "github.com/align2seq/align2seq/cmd"

func main() {
	cmd.Execute()
}
