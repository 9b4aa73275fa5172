package arena

import "github.com/prometheus/client_golang/prometheus"

// MetricsSource is anything that can produce an ArenaMetrics snapshot.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

type collector struct {
	src MetricsSource

	pages       *prometheus.Desc
	slotsInUse  *prometheus.Desc
	capacity    *prometheus.Desc
	bytesInUse  *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exporting the metrics of src.
// Arena is not goroutine-safe, so the caller must not gather while another
// goroutine allocates from the same arena.
func NewCollector(src MetricsSource, constLabels prometheus.Labels) prometheus.Collector {
	return &collector{
		src: src,
		pages: prometheus.NewDesc(
			"arena_pages",
			"The number of pages in the arena.",
			nil, constLabels,
		),
		slotsInUse: prometheus.NewDesc(
			"arena_slots_in_use",
			"The number of values stored, per element type.",
			[]string{"type"}, constLabels,
		),
		capacity: prometheus.NewDesc(
			"arena_slot_capacity",
			"The total number of slots across all pages.",
			nil, constLabels,
		),
		bytesInUse: prometheus.NewDesc(
			"arena_bytes_in_use",
			"The number of bytes occupied by stored values.",
			nil, constLabels,
		),
		utilization: prometheus.NewDesc(
			"arena_utilization_ratio",
			"The ratio of used slots to slot capacity.",
			nil, constLabels,
		),
	}
}

func (c *collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.pages
	descs <- c.slotsInUse
	descs <- c.capacity
	descs <- c.bytesInUse
	descs <- c.utilization
}

func (c *collector) Collect(m chan<- prometheus.Metric) {
	snap := c.src.Metrics()
	m <- prometheus.MustNewConstMetric(c.pages, prometheus.GaugeValue, float64(snap.NumPages))
	for _, tm := range snap.Types {
		m <- prometheus.MustNewConstMetric(c.slotsInUse, prometheus.GaugeValue, float64(tm.Slots), tm.Type)
	}
	m <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(snap.SlotCapacity))
	m <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(snap.SizeInUse))
	m <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, snap.Utilization)
}
