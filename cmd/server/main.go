package main

import (
	"os"

	"realty-flow/backend/internal/app"
)

// @title           Realty Flow Assistant API
// @version         1.0
// @description     Request-routing layer in front of an OpenAI-compatible completion service for real estate chat, task organization and meeting planning.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
