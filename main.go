package main

import "github.com/hirelab/smarthire/cmd"

func main() {
	cmd.Execute()
}
