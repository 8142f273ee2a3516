// Command mockstations serves the stations fixture API locally. Point the
// dashboard at it with api_url = "http://127.0.0.1:8080" (or the PORT from
// the environment).
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"github.com/kmoser/stationcal/internal/mockapi"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := mockapi.NewServer(nil).Router()
	h := handlers.LoggingHandler(os.Stdout, router)
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET"}),
	)(h)

	log.Printf("mock stations API listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
