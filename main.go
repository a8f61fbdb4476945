package main

import "github.com/Tiliavir/timetraveler/cmd"

func main() {
	cmd.Execute()
}
