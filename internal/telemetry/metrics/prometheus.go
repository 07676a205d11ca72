package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns the registry served on the metrics endpoint, with
// runtime and process collectors plus a vfit_build_info gauge labeled with
// the running version.
func SetupPrometheus(versionInfo string) *prometheus.Registry {
	if versionInfo == "" {
		versionInfo = "unknown"
	}

	promRegistry := prometheus.NewRegistry()
	buildInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "vfit_build_info",
		Help:        "Always 1, labeled with the running vfit version",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	buildInfo.Set(1)

	promRegistry.MustRegister(
		buildInfo,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return promRegistry
}
