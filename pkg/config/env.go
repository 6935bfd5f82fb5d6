package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"
	EnvMongoMaxPoolSize  = "MONGO_MAX_POOL_SIZE"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvHorizonDays        = "HORIZON_DAYS"
	EnvSlotGranularityMin = "SLOT_GRANULARITY_MIN"
	EnvWindowStart        = "WINDOW_START"
	EnvWindowEnd          = "WINDOW_END"

	EnvKafkaBrokers          = "KAFKA_BROKERS"
	EnvKafkaTopicAppointment = "KAFKA_TOPIC_APPOINTMENTS"
)
