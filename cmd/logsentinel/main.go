package main

import "github.com/Egor213/LogSentinel/internal/app"

func main() {
	app.Run()
}
