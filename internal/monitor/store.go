package monitor

import (
	"sort"

	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// Store holds the latest sample per device id. Each update replaces the
// device's sample wholesale. Ids are discovered from the stream, never
// pre-seeded from metadata, and never removed.
type Store struct {
	samples map[int]*xpum.DeviceSample
}

// NewStore creates an empty sample store.
func NewStore() *Store {
	return &Store{samples: make(map[int]*xpum.DeviceSample)}
}

// Put records the latest sample for a device.
func (s *Store) Put(id int, sample *xpum.DeviceSample) {
	s.samples[id] = sample
}

// Get returns the latest sample for a device, or nil if none seen.
func (s *Store) Get(id int) *xpum.DeviceSample {
	return s.samples[id]
}

// Len returns the number of devices seen so far.
func (s *Store) Len() int {
	return len(s.samples)
}

// IDs returns all device ids in ascending order, independent of arrival order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.samples))
	for id := range s.samples {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LatestTimestamp returns the lexically greatest non-empty timestamp across
// all samples, or "" when no sample carries one.
func (s *Store) LatestTimestamp() string {
	latest := ""
	for _, sample := range s.samples {
		if sample.Timestamp > latest {
			latest = sample.Timestamp
		}
	}
	return latest
}
