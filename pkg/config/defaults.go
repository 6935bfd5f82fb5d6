package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "salonbook"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoMaxPoolSize  = 10

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultHorizonDays        = 7
	DefaultSlotGranularityMin = 5
	DefaultWindowStart        = "09:00"
	DefaultWindowEnd          = "18:00"

	DefaultKafkaTopicAppointment = "salonbook.appointments"
)
