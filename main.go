package main

import "github.com/gaurav-prasanna/codepaste/cmd"

func main() {
	cmd.Execute()
}
