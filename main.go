package main

import "github.com/tonedrill/tonedrill/cmd"

func main() {
	cmd.Execute()
}
