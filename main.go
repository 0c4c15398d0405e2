package main

import (
	"os"

	"github.com/vida-hq/vida-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
