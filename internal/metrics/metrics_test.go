package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func gaugeValue(t *testing.T, mfs []*dto.MetricFamily, name, label, labelValue string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == labelValue {
					if m.Counter != nil {
						return m.Counter.GetValue()
					}
					if m.Gauge != nil {
						return m.Gauge.GetValue()
					}
				}
			}
		}
	}
	t.Fatalf("metric %s{%s=%s} not found", name, label, labelValue)
	return 0
}

func TestRecordAttemptIncrementsCounter(t *testing.T) {
	c := New()
	c.RecordAttempt("ASK")
	c.RecordAttempt("ASK")
	mfs, err := c.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	got := gaugeValue(t, mfs, "demod_attempts_total", "modulation", "ASK")
	if got != 2 {
		t.Fatalf("expected 2 attempts recorded, got %f", got)
	}
}

func TestRecordSuccessSetsClockEstimate(t *testing.T) {
	c := New()
	c.RecordSuccess("FSK2", 50)
	mfs, err := c.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	got := gaugeValue(t, mfs, "clock_detect_estimate", "modulation", "FSK2")
	if got != 50 {
		t.Fatalf("expected clock estimate 50, got %f", got)
	}
}

func TestHandlerNonNil(t *testing.T) {
	c := New()
	if c.Handler() == nil {
		t.Fatalf("expected non-nil metrics handler")
	}
}
