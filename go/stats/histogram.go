/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stats

import (
	"bytes"
	"fmt"
	"sync"
)

// Histogram tracks counts and totals while
// splitting the counts under different buckets
// using specified cutoffs.
type Histogram struct {
	cutoffs []int64
	labels  []string
	help    string

	// mu controls buckets & total
	mu      sync.Mutex
	buckets []int64
	total   int64
}

// NewHistogram creates a histogram with auto-generated labels based on the
// cutoffs. The buckets are categorized using the following criterion:
// cutoff[i-1] < value <= cutoff[i]. Anything higher than the highest cutoff
// is labeled as "inf".
func NewHistogram(cutoffs []int64, help string) *Histogram {
	labels := make([]string, len(cutoffs)+1)
	for i, v := range cutoffs {
		labels[i] = fmt.Sprintf("%d", v)
	}
	labels[len(labels)-1] = "inf"
	return &Histogram{
		cutoffs: cutoffs,
		labels:  labels,
		help:    help,
		buckets: make([]int64, len(labels)),
	}
}

// Add adds a new measurement to the Histogram.
func (h *Histogram) Add(value int64) {
	idx := len(h.labels) - 1
	for i := range h.cutoffs {
		if value <= h.cutoffs[i] {
			idx = i
			break
		}
	}
	h.mu.Lock()
	h.buckets[idx]++
	h.total += value
	h.mu.Unlock()
}

// String returns a string representation of the Histogram.
// Note that sum of all buckets may not be equal to the total temporarily,
// because Add() increments bucket and total with two atomic operations.
func (h *Histogram) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	b := bytes.NewBuffer(make([]byte, 0, 4096))
	fmt.Fprintf(b, "{")
	totalCount := int64(0)
	for i, label := range h.labels {
		totalCount += h.buckets[i]
		fmt.Fprintf(b, "%q: %v, ", label, totalCount)
	}
	fmt.Fprintf(b, "%q: %v, ", "Count", totalCount)
	fmt.Fprintf(b, "%q: %v", "Total", h.total)
	fmt.Fprintf(b, "}")
	return b.String()
}

// Count returns the number of times Add has been called.
func (h *Histogram) Count() (count int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, v := range h.buckets {
		count += v
	}
	return
}

// Total returns the sum of all values that have been added to this Histogram.
func (h *Histogram) Total() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

// Cutoffs returns the cutoffs that were set when this Histogram was created.
func (h *Histogram) Cutoffs() []int64 {
	return h.cutoffs
}

// Buckets returns a snapshot of the current values in all buckets. The last
// bucket counts the values above the highest cutoff.
func (h *Histogram) Buckets() []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	buckets := make([]int64, len(h.buckets))
	copy(buckets, h.buckets)
	return buckets
}

// Help returns the help string.
func (h *Histogram) Help() string {
	return h.help
}
