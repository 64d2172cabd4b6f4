// Package main boots the Notification Service HTTP server.
package main

import (
	"os"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/server"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/service"
)

func main() {
	os.Exit(server.Main(service.Notification))
}
