package main

import "github.com/ionut-t/folio/cmd"

func main() {
	cmd.Execute()
}
