package main

import (
	"fmt"
	"log"
	"os"

	"outreachpro-backend/cache"
	"outreachpro-backend/config"
	"outreachpro-backend/controllers"
	"outreachpro-backend/models"
	"outreachpro-backend/routes"
	"outreachpro-backend/services"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.MessageTemplate{},
		&models.ScheduleConfig{},
		&models.MessageLog{},
	)
}

func main() {
	store := services.NewGormStore(config.DB)

	var guard cache.SlotGuard
	if redisCfg := config.LoadRedisConfig(); redisCfg.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Address,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		guard = cache.NewRedisSlotGuard(rdb, redisCfg.TTL)
		log.Printf("Redis slot guard enabled (addr=%s)", redisCfg.Address)
	}

	dispatchService := services.NewDispatchService(store, guard)

	cronSpec := config.GetEnv("DISPATCH_CRON", "* * * * *")
	if _, err := services.StartDispatchScheduler(dispatchService, cronSpec); err != nil {
		log.Fatalf("Failed to start dispatch scheduler: %v", err)
	}

	mc := &controllers.MessageController{
		Sender: services.NewSenderService(store),
		Limiter: utils.NewUserRateLimiter(
			config.GetEnvInt("SEND_RATE_PER_MINUTE", 30),
			config.GetEnvInt("SEND_RATE_BURST", 10),
		),
	}
	dc := &controllers.DispatchController{
		Service: dispatchService,
		Token:   os.Getenv("DISPATCH_TOKEN"),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(mc, dc)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
