package main

import "backend-doctor/cmd"

func main() {
	cmd.Execute()
}
