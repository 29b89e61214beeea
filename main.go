package main

import "github.com/valerioTomassi/echox/cmd"

func main() {
	cmd.Execute()
}
