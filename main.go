package main

import "gradc/cmd"

func main() {
	cmd.Execute()
}
