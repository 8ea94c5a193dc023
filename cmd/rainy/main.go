package main

import "github.com/elpinal/rainy/cmd/rainy/cmd"

func main() {
	cmd.Execute()
}
