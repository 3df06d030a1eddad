package main

import "barberia_backend/internal/app"

func main() {
	app.Run()
}
