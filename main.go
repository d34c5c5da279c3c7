package main

import "order-status/cmd"

func main() {
	cmd.Execute()
}
