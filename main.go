package main

import "github.com/cvlsoft/aios_backend/cmd"

func main() {
	cmd.Execute()
}
