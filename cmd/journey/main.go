package main

import "github.com/information-sharing-networks/journey/internal/cli"

func main() {
	cli.Execute()
}
