// Package metrics exposes the service's Prometheus counters. They are
// incremented from the service layer and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "receiptsvc"

var (
	// ReceiptsProcessed counts receipt uploads by outcome: parsed,
	// rejected (amount/date unrecoverable) or failed (extraction error).
	ReceiptsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "receipts",
		Name:      "processed_total",
		Help:      "Receipt uploads processed, by outcome",
	}, []string{"outcome"})

	// StatementRowsExtracted counts valid rows recovered from tabular
	// statement uploads.
	StatementRowsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "statements",
		Name:      "rows_extracted_total",
		Help:      "Valid transaction rows recovered from statements",
	})

	// OCRFallbacks counts PDFs whose text layer was unusable and went
	// through image extraction plus OCR instead.
	OCRFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "extraction",
		Name:      "ocr_fallbacks_total",
		Help:      "Scanned PDFs that fell back to image OCR",
	})
)
