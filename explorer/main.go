package main

import "bikeshare/explorer/cmd"

func main() {
	cmd.Execute()
}
