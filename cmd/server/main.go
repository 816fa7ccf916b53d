package main

import (
	"github.com/joho/godotenv"

	authhandler "hotelbooking/internal/auth/handler"
	bookingshandler "hotelbooking/internal/bookings/handler"
	bookingsrepo "hotelbooking/internal/bookings/repository"
	bookingsservice "hotelbooking/internal/bookings/service"
	bookingsvalidator "hotelbooking/internal/bookings/validator"
	reviewshandler "hotelbooking/internal/reviews/handler"
	reviewsrepo "hotelbooking/internal/reviews/repository"
	reviewsservice "hotelbooking/internal/reviews/service"
	reviewsvalidator "hotelbooking/internal/reviews/validator"
	roomshandler "hotelbooking/internal/rooms/handler"
	roomsrepo "hotelbooking/internal/rooms/repository"
	roomsservice "hotelbooking/internal/rooms/service"
	usershandler "hotelbooking/internal/users/handler"
	usersrepo "hotelbooking/internal/users/repository"
	usersservice "hotelbooking/internal/users/service"
	usersvalidator "hotelbooking/internal/users/validator"
	"hotelbooking/pkg/app"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/contracts"
	"hotelbooking/pkg/events"
	"hotelbooking/pkg/token"
)

const ServiceName = "hotel-booking"

func main() {
	// Missing .env is fine; plain process env works too.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Hotel Booking service")

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config) []contracts.Handler {
	roomRepo := roomsrepo.NewMongoRoomRepository(cfg)
	userRepo := usersrepo.NewMongoUserRepository(cfg)
	bookingRepo := bookingsrepo.NewMongoBookingRepository(cfg)
	reviewRepo := reviewsrepo.NewMongoReviewRepository(cfg)

	publisher := initPublisher(cfg)

	roomService := roomsservice.NewRoomService(roomRepo, reviewRepo, cfg)
	userService := usersservice.NewUserService(userRepo, usersvalidator.NewUserValidator(), cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		roomRepo,
		bookingsvalidator.NewBookingValidator(),
		publisher,
		cfg,
	)
	reviewService := reviewsservice.NewReviewService(reviewRepo, reviewsvalidator.NewReviewValidator(), cfg)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		roomshandler.NewRoomHandler(roomService, cfg.Log),
		usershandler.NewUserHandler(userService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		reviewshandler.NewReviewHandler(reviewService, cfg.Log),
		authhandler.NewAuthHandler(issuer, cfg.Log),
	}
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}

	cfg.Log.Info("Booking event publisher initialized",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaTopic,
	)
	return publisher
}
