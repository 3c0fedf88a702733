package main

import "github.com/iwtcode/slideService/internal/cli"

func main() {
	cli.Execute()
}
