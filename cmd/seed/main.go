// Command main runs the database seeder for Kalyanam.
package main

import (
	"flag"
	"log"

	"kalyanam/internal/config"
	"kalyanam/internal/database"
	"kalyanam/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of members to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d members, clean=%v\n", *numUsers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Println("📧 Members use the password: MemberPassword1!  Admin: admin@example.com / AdminPassword1!")
}
