package main

import (
	"log"
	"time"

	"lumina/assistant"
	"lumina/auth"
	"lumina/config"
	"lumina/database"
	"lumina/portal"
	"lumina/routers"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	auth.Init(database.NewAccountStore(database.Database.Db))
	assistant.Init()
	portal.Init(auth.Default, time.Duration(config.AppConfig.PortalIdleMinutes)*time.Minute)

	sweeper := portal.StartSweeper(portal.Sessions)
	defer sweeper.Stop()

	app := routers.SetupApp()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
