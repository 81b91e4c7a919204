package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestDataAccessMetricsExportsHistogramAndFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDataAccessMetrics(reg)
	m.Observe("getProject", 50*time.Millisecond, nil)
	m.Observe("getProject", 50*time.Millisecond, errors.New("not found"))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "dataaccess_operation_failures_total", map[string]string{"op": "getProject"}); err != nil {
		t.Fatalf("fetch failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failures=1, got %f", got)
	}

	if got, err := fetchHistogramCount(mfs, "dataaccess_operation_duration_seconds", map[string]string{"op": "getProject"}); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 observations, got %d", got)
	}
}

func TestStorageAndTransitionCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	storage := NewStorageMetrics(reg)
	transitions := NewTransitionMetrics(reg)

	storage.IncFailure("set")
	storage.IncFailure("")
	transitions.IncStarted("backward", "inferred")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, _ := fetchCounterValue(mfs, "kvstore_failures_total", map[string]string{"op": "set"}); got != 1 {
		t.Fatalf("expected set failure=1, got %f", got)
	}
	if got, _ := fetchCounterValue(mfs, "kvstore_failures_total", map[string]string{"op": "unknown"}); got != 1 {
		t.Fatalf("expected unknown failure=1, got %f", got)
	}
	if got, _ := fetchCounterValue(mfs, "route_transitions_total", map[string]string{"direction": "backward", "trigger": "inferred"}); got != 1 {
		t.Fatalf("expected transition=1, got %f", got)
	}
}

func TestNilRecordersAreNoops(t *testing.T) {
	var da *DataAccessMetrics
	da.Observe("x", time.Second, nil)
	NewDataAccessMetrics(nil).Observe("x", time.Second, errors.New("x"))
	NewStorageMetrics(nil).IncFailure("get")
	NewTransitionMetrics(nil).IncStarted("forward", "explicit")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func fetchHistogramCount(mfs []*dto.MetricFamily, name string, labels map[string]string) (uint64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetHistogram().GetSampleCount(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok && v == pair.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
