package main

import "github.com/rookgm/phoenixbot/cmd/phoenixbot/commands"

func main() {
	commands.Execute()
}
