package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	err = server.Run(fmt.Sprintf(":%s", server.Port))
	if err != nil {
		log.Fatal(fmt.Sprintf("could not start server: %s", err))
	}
}
