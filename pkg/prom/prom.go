package prom

import (
	"sync"

	xhttp "github.com/nimasrn/retail-normalizer/pkg/http"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	SystemNormalizer = "normalizer"
)
const (
	MetricRecordsLoaded     = "records_loaded_total"
	MetricDuplicatesRemoved = "duplicates_removed_total"
	MetricRecordsEnriched   = "records_enriched_total"
	MetricRuns              = "runs_total"
	MetricRunDuration       = "run_duration_seconds"
	MetricPhaseDuration     = "phase_duration_seconds"
)

var lockCreateMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var MetricCollectionCounters = make(map[string]prometheus.Counter)
var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
var MetricCollectionHistogram = make(map[string]prometheus.Histogram)
var MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

func Create(host string, env string, nameSpace string) error {
	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	defaultLabels["instance"] = host
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounter(SystemNormalizer, MetricRecordsLoaded))
	hasError(createCounter(SystemNormalizer, MetricDuplicatesRemoved))
	hasError(createCounterVec(SystemNormalizer, MetricRecordsEnriched, []string{"tier"}))
	hasError(createCounterVec(SystemNormalizer, MetricRuns, []string{"status"}))
	hasError(createHistogram(SystemNormalizer, MetricRunDuration))
	hasError(createHistogramVec(SystemNormalizer, MetricPhaseDuration, []string{"phase"}))

	return err
}

// Serve exposes the default registry on addr/url in the background and
// returns the engine so the caller can shut it down.
func Serve(addr string, url string) *xhttp.Engine {
	hh := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s := xhttp.CreateServer()
	s.GET(url, hh)
	go func() {
		logger.Info("[metrics-server] listening...", "addr", addr, "url", url)
		if err := s.ListenAndServe(addr); err != nil {
			logger.Error("[metrics-server] http listen error", "error", err)
		}
	}()
	return s
}

func createCounter(subsystem, name string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounters[subsystem+name] = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        "",
		ConstLabels: defaultLabels,
	})
	return prometheus.Register(MetricCollectionCounters[subsystem+name])
}

func createCounterVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounterVec[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        "",
		ConstLabels: defaultLabels,
	}, labels)
	return prometheus.Register(MetricCollectionCounterVec[subsystem+name])
}

func createHistogram(subsystem, name string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionHistogram[subsystem+name] = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        "",
		ConstLabels: defaultLabels,
		Buckets:     prometheus.ExponentialBuckets(0.05, 2, 12),
	})
	return prometheus.Register(MetricCollectionHistogram[subsystem+name])
}

func createHistogramVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionHistogramVec[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        "",
		ConstLabels: defaultLabels,
		Buckets:     prometheus.ExponentialBuckets(0.01, 2, 12),
	}, labels)
	return prometheus.Register(MetricCollectionHistogramVec[subsystem+name])
}

func AddCounter(subsystem, name string, number float64) {
	if MetricSystemEnabled == false {
		return
	}
	if v, ok := MetricCollectionCounters[subsystem+name]; ok {
		v.Add(number)
		return
	}
	logger.Warn("[metrics-server] counter not found", "subsystem", subsystem, "name", name)
}

func AddCounterVec(subsystem, name string, num float64, labelValues ...string) {
	if MetricSystemEnabled == false {
		return
	}
	if v, ok := MetricCollectionCounterVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Add(num)
		return
	}
	logger.Warn("[metrics-server] counter vec not found", "subsystem", subsystem, "name", name)
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	AddCounterVec(subsystem, name, 1, labelValues...)
}

func AddHistogram(subsystem, name string, number float64) {
	if MetricSystemEnabled == false {
		return
	}
	if v, ok := MetricCollectionHistogram[subsystem+name]; ok {
		v.Observe(number)
		return
	}
	logger.Warn("[metrics-server] histogram not found", "subsystem", subsystem, "name", name)
}

func AddHistogramVec(subsystem, name string, number float64, labelValues ...string) {
	if MetricSystemEnabled == false {
		return
	}
	if v, ok := MetricCollectionHistogramVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Observe(number)
		return
	}
	logger.Warn("[metrics-server] histogram vec not found", "subsystem", subsystem, "name", name)
}

func AddRecordsLoaded(n int64) {
	AddCounter(SystemNormalizer, MetricRecordsLoaded, float64(n))
}

func AddDuplicatesRemoved(n int64) {
	AddCounter(SystemNormalizer, MetricDuplicatesRemoved, float64(n))
}

func AddRecordsEnriched(n int64, tier string) {
	AddCounterVec(SystemNormalizer, MetricRecordsEnriched, float64(n), tier)
}

func ObserveRun(status string, seconds float64) {
	IncCounterVec(SystemNormalizer, MetricRuns, status)
	AddHistogram(SystemNormalizer, MetricRunDuration, seconds)
}

// ObservePhase records how long one step of the batch took.
func ObservePhase(phase string, seconds float64) {
	AddHistogramVec(SystemNormalizer, MetricPhaseDuration, seconds, phase)
}
