package main

import "github.com/fnmdesk/fnmdesk/src/cmd"

func main() {
	cmd.Execute()
}
