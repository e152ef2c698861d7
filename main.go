package main

import "github.com/nutrivida/nutrivida_backend/cmd"

func main() {
	cmd.Execute()
}
