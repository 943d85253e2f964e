package main

import (
	"admission/config"
	"admission/database"
	"admission/utils"
	"flag"
	"log"
	"time"
)

// Regenerates the important-date rows for every program from the semester
// calendar. Safe to re-run: the same year always produces the same rows.
func main() {
	year := flag.Int("year", time.Now().Year(), "calendar year to seed")
	flag.Parse()

	config.LoadConfig()
	database.ConnectDb()

	log.Printf("Seeding important dates for %d...", *year)

	seeded, err := utils.SeedImportantDates(*year)
	if err != nil {
		log.Fatalf("Failed to seed important dates: %v", err)
	}

	log.Printf("Done. %d rows written.", seeded)
}
