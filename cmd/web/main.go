package main

import "gigwork_backend/internal/app"

func main() {
	app.Run()
}
