package main

import "github.com/alexiusacademia/gotab/cmd"

func main() {
	cmd.Execute()
}
