package main

import (
	"log"

	"betadmin/config"
	"betadmin/stubserver"
)

// Runs the stub backend with seeded demo data, so the console has something
// to talk to during local development.
func main() {
	config.LoadConfig()

	server, err := stubserver.New(stubserver.Options{
		JWTKey:        config.AppConfig.JWTKey,
		AdminEmail:    config.AppConfig.AdminEmail,
		AdminPassword: config.AppConfig.AdminPassword,
		SaltRound:     config.AppConfig.SaltRound,
	})
	if err != nil {
		log.Fatalf("Failed to start stub backend: %v", err)
	}

	if err := server.SeedDemoData(); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Admin login: %s / %s", config.AppConfig.AdminEmail, config.AppConfig.AdminPassword)
	log.Fatal(server.Listen(config.AppConfig.Port))
}
