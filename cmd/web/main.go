package main

import "tunzacare_backend/internal/app"

func main() {
	app.Run()
}
