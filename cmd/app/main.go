package main

import (
	"log"

	"recipe-book/cmd/config"
	migration "recipe-book/cmd/database/migrate"
	"recipe-book/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
