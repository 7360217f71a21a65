// internal/metrics/metrics.go
//
// Package metrics exposes the engine's live counters as Prometheus
// gauges: queue length, index size, and keyword count. Rather than
// pushing updates into static gauges on every store mutation, the
// collector reads straight from the index.Store at scrape time, so
// the exposed values are always current and workers never need to
// know metrics exist.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Store is the subset of index.Store the collector reads from.
type Store interface {
	QueueLength() int
	IndexLength() int
	KeywordLength() int
}

var (
	queueLengthDesc = prometheus.NewDesc(
		"gatecrawl_queue_length", "Number of work keys currently pending.", nil, nil)
	indexSizeDesc = prometheus.NewDesc(
		"gatecrawl_index_size", "Number of published results.", nil, nil)
	keywordCountDesc = prometheus.NewDesc(
		"gatecrawl_keyword_count", "Number of distinct indexed keywords.", nil, nil)
)

// Collector implements prometheus.Collector over a Store.
type Collector struct {
	store Store
}

// NewCollector constructs a Collector for store.
func NewCollector(store Store) *Collector {
	return &Collector{store: store}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queueLengthDesc
	ch <- indexSizeDesc
	ch <- keywordCountDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(queueLengthDesc, prometheus.GaugeValue, float64(c.store.QueueLength()))
	ch <- prometheus.MustNewConstMetric(indexSizeDesc, prometheus.GaugeValue, float64(c.store.IndexLength()))
	ch <- prometheus.MustNewConstMetric(keywordCountDesc, prometheus.GaugeValue, float64(c.store.KeywordLength()))
}
