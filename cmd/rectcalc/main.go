package main

import "github.com/aalvaropc/rectcalc/internal/cli"

func main() {
	cli.Execute()
}
