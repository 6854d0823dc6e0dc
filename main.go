package main

import "github.com/koki-develop/imgscii/cmd"

func main() {
	cmd.Execute()
}
