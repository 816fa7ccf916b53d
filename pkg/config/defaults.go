package config

import "time"

const (
	DefaultMongoDatabaseName = "hotelRoomBooking"
	DefaultMongoConnTimeout  = 10 * time.Second

	// Managed-cluster address template, filled in from DB_USER/DB_PASS when
	// MONGO_URI itself is not set.
	MongoURITemplate = "mongodb+srv://%s:%s@cluster0.u51v8.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0"

	DefaultPort = "5000"

	// The upstream deployment shipped with this literal signing secret and a
	// one hour expiry. Known gap, kept for parity.
	DefaultJWTSecret = "secret"
	DefaultJWTTTL    = time.Hour

	DefaultKafkaTopic = "booking-events"

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"
)
