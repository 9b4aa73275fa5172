package main

import "github.com/pavanmanishd/arena/v2/internal/cli"

func main() {
	cli.Execute()
}
