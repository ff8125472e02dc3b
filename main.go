package main

import "github.com/campusbase/registrar/cmd"

func main() {
	cmd.Execute()
}
