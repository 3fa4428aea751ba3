package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"footworks-server/api"
	"footworks-server/api/youtube"
	"footworks-server/config"
	"footworks-server/dao/redis"
	"footworks-server/db"
	"footworks-server/server"
	"footworks-server/server/handlers"
	services "footworks-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisStaffDao         *redis.RedisStaffDAO
	RedisMediaDao         *redis.RedisMediaDAO
	RedisBookingDao       *redis.RedisBookingDAO
	YoutubeAPI            youtube.YoutubeAPI
	StaffService          *services.StaffService
	MediaService          *services.MediaService
	BookingService        *services.BookingService
	SelectorService       *services.SelectorService
	MediaRefresherService *services.MediaRefresherService
	MuxRouter             *mux.Router
	Router                *server.Router
	FootworksHttpServer   *server.FootworksHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewStoreRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize DAOs
	redisStaffDao := redis.NewRedisStaffDAO(redisClient)
	redisMediaDao := redis.NewRedisMediaDAO(redisClient)
	redisBookingDao := redis.NewRedisBookingDAO(redisClient)

	// Initialize YoutubeAPI - mock outside prod
	var youtubeApiClient youtube.YoutubeAPI
	if env != "prod" {
		youtubeApiClient = youtube.NewYoutubeApiClientMock()
		log.Printf("Using mock youtube api")
	} else {
		log.Printf("Using prod youtube api")
		httpClient := api.NewHTTPClient(config.YOUTUBE_ENDPOINT_BASE_V3)

		youtubeApiClient = youtube.NewYoutubeApiClient(httpClient)
		youtubeApiClient.SetCredentials(config.YoutubeAPIKey())
	}

	// Initialize service layer
	staffService := services.NewStaffService(redisStaffDao, redisBookingDao)
	mediaService := services.NewMediaService(redisMediaDao)
	bookingService := services.NewBookingService(redisBookingDao, redisStaffDao)
	selectorService := services.NewSelectorService(redisBookingDao)
	mediaRefresherService := services.NewMediaRefresherService(redisMediaDao, youtubeApiClient)

	// Initialize handlers
	staffHandler := handlers.NewStaffHandler(staffService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	selectorHandler := handlers.NewSelectorHandler(selectorService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(staffHandler, mediaHandler, bookingHandler, selectorHandler, muxRouter)

	// initialize footworks server
	footworksHttpServer := server.NewFootworksHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisStaffDao:         redisStaffDao,
		RedisMediaDao:         redisMediaDao,
		RedisBookingDao:       redisBookingDao,
		YoutubeAPI:            youtubeApiClient,
		StaffService:          staffService,
		MediaService:          mediaService,
		BookingService:        bookingService,
		SelectorService:       selectorService,
		MediaRefresherService: mediaRefresherService,
		MuxRouter:             muxRouter,
		Router:                router,
		FootworksHttpServer:   footworksHttpServer,
	}
}
