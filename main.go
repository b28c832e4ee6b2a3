package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("lg/fitness-nutrition-go-api: ")
	log.SetFlags(0)

	// .env is optional — settings can come from the real environment too.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	// The advisor is the only configured external dependency. Missing
	// settings are reported once here; the dashboard still runs and advisor
	// endpoints answer with the fallback string.
	adv, err := newAdvisor(
		os.Getenv("OPENAI_BASE_URL"),
		os.Getenv("OPENAI_MODEL"),
		os.Getenv("OPENAI_API_KEY"),
	)
	if err != nil {
		log.Printf("%v — advisor endpoints will return the fallback answer", err)
	}

	h := &Handler{
		store:   newFoodLogStore(foodLogFile),
		advisor: adv,
	}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	router.Run("localhost:3000")
}
