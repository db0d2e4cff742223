package main

import (
	"os"

	"burrow/internal/app"
)

func main() {
	os.Exit(app.Run())
}
