package main

import (
	"coursehub/config"
	"coursehub/database"
	"log"
)

// Seeds the platform admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Run with: go run scripts/seedAdmin.go
func main() {
	config.LoadConfig()
	database.ConnectDb()

	database.SeedAdminAccount(database.Database.Db)

	log.Println("Admin seeding finished.")
}
