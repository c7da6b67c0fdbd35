package main

import "github.com/mouse-blink/punctnorm/cmd"

func main() {
	cmd.Execute()
}
