// Package domain contains the core entities shared across the sampler: IPv4
// addresses, probe outcomes, findings and the aggregated scan report. They are
// intentionally free of infrastructure concerns so they can be passed between
// the generator, the probes, the coordinator and the renderer.
package domain
