package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// namespace prefixes every metric exported by the checkout service.
const namespace = "motoya"

// Registry is the custom Prometheus registry for checkout metrics, served on /metrics.
// It carries the Go runtime and process collectors alongside the service metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
