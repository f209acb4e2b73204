package telemetry

// Predefined service configurations
var (
	// SagaStepsConfig is the telemetry configuration for the saga step runner
	SagaStepsConfig = Config{
		ServiceName:    "saga-steps",
		ServiceVersion: "1.0.0",
	}

	// CourierWorkerConfig is the telemetry configuration for the courier assignment worker
	CourierWorkerConfig = Config{
		ServiceName:    "courier-worker",
		ServiceVersion: "1.0.0",
	}
)

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}
