// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package dgim

import "github.com/prometheus/client_golang/prometheus"

// Metric descriptors exposed by a State's prometheus.Collector
// implementation.
var (
	bucketsInUseDesc = prometheus.NewDesc(
		"dgim_buckets_in_use", "Live buckets currently held by the histogram.", nil, nil)
	bucketsCapacityDesc = prometheus.NewDesc(
		"dgim_buckets_capacity", "Bucket pool capacity, (k+1)*m.", nil, nil)
	groupsInUseDesc = prometheus.NewDesc(
		"dgim_groups_in_use", "Live size-class groups currently held by the histogram.", nil, nil)
	groupsCapacityDesc = prometheus.NewDesc(
		"dgim_groups_capacity", "Group pool capacity, m.", nil, nil)
	windowSizeDesc = prometheus.NewDesc(
		"dgim_window_size", "Configured window size N.", nil, nil)
	accuracyDesc = prometheus.NewDesc(
		"dgim_accuracy_k", "Configured accuracy parameter k (relative error 1/k).", nil, nil)
	sizeClassesDesc = prometheus.NewDesc(
		"dgim_size_classes", "Maximum number of bucket size classes, m.", nil, nil)
	logicalClockDesc = prometheus.NewDesc(
		"dgim_now", "Logical clock value, incremented once per Next call.", nil, nil)
	mergeEventsDesc = prometheus.NewDesc(
		"dgim_merge_events_total", "Cumulative number of bucket merge steps.", nil, nil)
)

// Describe implements prometheus.Collector.
func (s *State) Describe(ch chan<- *prometheus.Desc) {
	ch <- bucketsInUseDesc
	ch <- bucketsCapacityDesc
	ch <- groupsInUseDesc
	ch <- groupsCapacityDesc
	ch <- windowSizeDesc
	ch <- accuracyDesc
	ch <- sizeClassesDesc
	ch <- logicalClockDesc
	ch <- mergeEventsDesc
}

// Collect implements prometheus.Collector. It is safe to call
// concurrently with other Collect calls, but like every other State
// method it must not be called concurrently with Next or Close.
func (s *State) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(bucketsInUseDesc, prometheus.GaugeValue, float64(s.buckets.used))
	ch <- prometheus.MustNewConstMetric(bucketsCapacityDesc, prometheus.GaugeValue, float64(len(s.buckets.slab)))
	ch <- prometheus.MustNewConstMetric(groupsInUseDesc, prometheus.GaugeValue, float64(s.groups.used))
	ch <- prometheus.MustNewConstMetric(groupsCapacityDesc, prometheus.GaugeValue, float64(len(s.groups.slab)))
	ch <- prometheus.MustNewConstMetric(windowSizeDesc, prometheus.GaugeValue, float64(s.n))
	ch <- prometheus.MustNewConstMetric(accuracyDesc, prometheus.GaugeValue, float64(s.k))
	ch <- prometheus.MustNewConstMetric(sizeClassesDesc, prometheus.GaugeValue, float64(s.m))
	ch <- prometheus.MustNewConstMetric(logicalClockDesc, prometheus.CounterValue, float64(s.now))
	ch <- prometheus.MustNewConstMetric(mergeEventsDesc, prometheus.CounterValue, float64(s.mergeEventsValue()))
}
