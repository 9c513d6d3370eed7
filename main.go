package main

import (
	"os"

	"github.com/pwdgen/pwdgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
