package main

import "questplus/internal/cli"

func main() {
	cli.Execute()
}
