package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// BatchTimeout in milliseconds; zero means the writer default.
	BatchTimeoutMs int
}
