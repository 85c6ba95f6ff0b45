// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	RecordHTTPRequest("GET", "/health", 200, 5*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	if after != before+1 {
		t.Errorf("counter = %f, want %f", after, before+1)
	}
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("A", "text"))
	RecordSearch("A", "text", 2*time.Millisecond)
	after := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("A", "text"))
	if after != before+1 {
		t.Errorf("counter = %f, want %f", after, before+1)
	}
}

func TestClicksTotalLabels(t *testing.T) {
	before := testutil.ToFloat64(ClicksTotal.WithLabelValues("B"))
	ClicksTotal.WithLabelValues("B").Inc()
	after := testutil.ToFloat64(ClicksTotal.WithLabelValues("B"))
	if after != before+1 {
		t.Errorf("counter = %f, want %f", after, before+1)
	}
}

func TestCatalogSizeGauge(t *testing.T) {
	CatalogSize.Set(20)
	if got := testutil.ToFloat64(CatalogSize); got != 20 {
		t.Errorf("gauge = %f, want 20", got)
	}
}
