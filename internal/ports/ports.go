package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Cache document
	DocumentStore   DocumentStore
	ForecastMetrics ForecastMetrics

	// Upstream
	UpstreamMetrics UpstreamMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	ProviderLogger Logger
}
