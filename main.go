package main

import "github.com/duocalvin/duosvg/cmd"

func main() {
	cmd.Execute()
}
