// Package arenaprom exports arena statistics as Prometheus metrics.
package arenaprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/memkit/arena"
)

type collector struct {
	src func() arena.Stats

	allocated   *prometheus.Desc
	used        *prometheus.Desc
	blocks      *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector returns a prometheus.Collector reporting the statistics of
// one arena under the given name label. src is invoked on every scrape; the
// arena is not goroutine-safe, so src must only read counters while no
// allocation is in flight (for example from the goroutine that owns the
// arena, or over a snapshot it publishes).
func NewCollector(name string, src func() arena.Stats) prometheus.Collector {
	labels := prometheus.Labels{"arena": name}
	return &collector{
		src: src,
		allocated: prometheus.NewDesc(
			"arena_bytes_allocated",
			"Summed capacity of all blocks owned by the arena.",
			nil, labels,
		),
		used: prometheus.NewDesc(
			"arena_bytes_used",
			"Bytes consumed across all blocks, alignment padding included.",
			nil, labels,
		),
		blocks: prometheus.NewDesc(
			"arena_blocks",
			"Number of blocks owned by the arena.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"arena_utilization_ratio",
			"Ratio of used bytes to total capacity.",
			nil, labels,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocated
	ch <- c.used
	ch <- c.blocks
	ch <- c.utilization
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src()
	ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.GaugeValue, float64(s.TotalAllocated))
	ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(s.TotalUsed))
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(s.BlockCount))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, s.Utilization)
}
