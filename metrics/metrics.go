// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics holds the prometheus collectors of the engine.
// They are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scopos3d"

var (
	// ResolveLookups counts resolver lookups that missed the cache,
	// by the rule that produced the answer (exact, substring, numeric, miss).
	ResolveLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolve",
		Name:      "lookups_total",
		Help:      "Resolver lookups by winning rule",
	}, []string{"rule"})

	// ResolveCacheHits counts resolver lookups answered from the cache.
	ResolveCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolve",
		Name:      "cache_hits_total",
		Help:      "Resolver lookups answered from the cache",
	})

	// HighlightOverrides counts material overrides applied, by bucket.
	HighlightOverrides = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "highlight",
		Name:      "overrides_total",
		Help:      "Material overrides applied by bucket",
	}, []string{"bucket"})

	// MaterialsDisposed counts synthesized materials released by the tracker.
	MaterialsDisposed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "highlight",
		Name:      "materials_disposed_total",
		Help:      "Synthesized materials disposed",
	})

	// FilterPasses counts completed filter passes over the scene, by mode.
	FilterPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "passes_total",
		Help:      "Filter passes applied to the scene by mode",
	}, []string{"mode"})

	// FilterResults counts code fetch outcomes: ok, error or stale.
	FilterResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "fetch_results_total",
		Help:      "Filter code fetches by outcome",
	}, []string{"outcome"})

	// CameraAnimations counts camera animation requests: started or dropped.
	CameraAnimations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "camera",
		Name:      "animations_total",
		Help:      "Camera animation requests by outcome",
	}, []string{"outcome"})

	// EquipmentRequests counts equipment data source requests,
	// by endpoint and status (ok, error, fallback).
	EquipmentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "equipment",
		Name:      "requests_total",
		Help:      "Equipment data source requests",
	}, []string{"endpoint", "status"})

	// Selections counts selection changes made from pointer input
	// or bus requests.
	Selections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "selection",
		Name:      "changes_total",
		Help:      "Selection changes",
	})
)
