package main

import (
	"github.com/mj1618/active-window/cmd"
	_ "github.com/mj1618/active-window/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
