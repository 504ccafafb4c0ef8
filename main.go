package main

import "github.com/vcsim/vcsim/cmd"

func main() {
	cmd.Execute()
}
