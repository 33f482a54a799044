// Seeds a fresh database with the bootstrap admin accounts and sample
// officers. Safe to run repeatedly: existing rows are left untouched.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ethekwini-metro/pts-backend-go/internal/config"
	"github.com/ethekwini-metro/pts-backend-go/internal/fixtures"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
		log.Println("SEED_ADMIN_PASSWORD not set, using the default development password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	for _, u := range fixtures.SeedUsers {
		_, err := db.Exec(ctx, `
			INSERT INTO users (email, name, role, password_hash, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (email) DO NOTHING
		`, u.Email, u.Name, string(u.Role), string(hash))
		if err != nil {
			log.Fatal("Error seeding user: ", err)
		}
		fmt.Println("Seeded user:", u.Email)
	}

	for _, o := range fixtures.SeedOfficers {
		_, err := db.Exec(ctx, `
			INSERT INTO officers (
				ao_number, pc_number, first_name, last_name, rank, station,
				contact_number, email, date_of_joining
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (ao_number) DO NOTHING
		`, o.AONumber, o.PCNumber, o.FirstName, o.LastName, o.Rank, o.Station,
			o.ContactNumber, o.Email, o.DateOfJoining)
		if err != nil {
			log.Fatal("Error seeding officer: ", err)
		}
		fmt.Println("Seeded officer:", o.AONumber)
	}

	fmt.Println("Seed complete")
}
