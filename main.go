package main

import "github.com/bitpaper/paper-wallet/cmd"

func main() {
	cmd.Execute()
}
