package main

import "github.com/wkalt/easytau/cli/cmd"

func main() {
	cmd.Execute()
}
