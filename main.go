package main

import "github.com/twiced-technology-gmbh/taskninja/cmd"

func main() {
	cmd.Execute()
}
