package main

import "github.com/mindchat/mindchat_backend/cmd"

func main() {
	cmd.Execute()
}
