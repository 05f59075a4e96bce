package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.TasksSubmitted.WithLabelValues("scanlines").Add(10)
	registry.TasksCompleted.WithLabelValues("scanlines").Add(8)
	registry.TasksFailed.WithLabelValues("scanlines").Add(2)
	registry.PoolWorkers.WithLabelValues("scanlines").Set(4)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	// Create a custom registry
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Create metrics registry with custom config
	registry := NewRegistry(config.Registry)

	// Test the registry
	registry.TasksSubmitted.WithLabelValues("batch").Add(12)
	registry.TasksDropped.WithLabelValues("batch").Add(2)

	fmt.Printf("Custom registry enabled: %v\n", config.Enabled)
	fmt.Println("Custom registry configured with taskpool metrics")

	// Output:
	// Custom registry enabled: true
	// Custom registry configured with taskpool metrics
}

// Example_metricsServer demonstrates setting up a metrics HTTP server.
func Example_metricsServer() {
	// In a real application, you would start a metrics server:
	//
	// http.Handle("/metrics", promhttp.Handler())
	// log.Fatal(http.ListenAndServe(":8080", nil))
	//
	// Available metrics would include:
	// - taskpool_pool_workers{pool_name="scanlines"}
	// - taskpool_pool_queued_tasks{pool_name="scanlines"}
	// - taskpool_tasks_submitted_total{pool_name="scanlines"}
	// - taskpool_tasks_completed_total{pool_name="scanlines"}
	// And more...

	fmt.Println("Metrics available at /metrics endpoint")
	fmt.Println("See examples/metrics/main.go for a complete demonstration")

	// Output:
	// Metrics available at /metrics endpoint
	// See examples/metrics/main.go for a complete demonstration
}

// Example_configuration demonstrates different metrics configurations.
func Example_configuration() {
	// Default configuration
	defaultConfig := DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)

	// Custom configuration
	customConfig := Config{
		Enabled: false,
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)

	// Output:
	// Default enabled: true
	// Custom enabled: false
}
