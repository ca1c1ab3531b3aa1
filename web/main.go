package main

import (
	"flag"
	"log"
	"os"

	"github.com/mattrusch/softrt/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("SoftRT Web Server")
	log.Printf("Render via http://localhost:%d/api/render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
