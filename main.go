package main

import (
	"github.com/snowzach/thingapi/cmd"
)

func main() {
	cmd.Execute()
}
