package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"vinca/config"
	"vinca/controllers"
	"vinca/database"
	"vinca/payments"
	"vinca/routes"
	"vinca/store"
)

func main() {

	config.LoadEnv()

	database.ConnectMongo()
	database.InitCollections()
	database.EnsureIndexes()

	st := store.New(database.DB)
	pay := payments.New(
		config.GetEnv("STRIPE_SECRET_KEY", ""),
		config.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
	)
	controllers.Init(st, pay)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r)

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
