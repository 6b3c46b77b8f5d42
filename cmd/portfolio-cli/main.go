package main

import "github.com/nfrund/portfolio/cmd/portfolio-cli/cmd"

func main() {
	cmd.Execute()
}
