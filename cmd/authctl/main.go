package main

import "github.com/jaekwang-park/userpool-auth/cmd/authctl/commands"

func main() {
	commands.Execute()
}
