package main

import "github.com/venuecraft/venuesim/cmd"

func main() {
	cmd.Execute()
}
