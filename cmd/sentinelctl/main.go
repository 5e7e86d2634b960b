package main

import (
	"os"

	"github.com/Egor213/LogSentinel/internal/app"
)

func main() {
	os.Exit(app.RunCtl(os.Args[1:]))
}
