// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"container/heap"
	"fmt"
	"slices"
)

// Entry is a queue entry as seen from outside the queue.
type Entry struct {
	Key      Key
	Priority int64
}

type entry struct {
	Entry

	// stamp breaks ties between equal priorities, lower first. It is set
	// on push and again whenever the entry turns negative.
	stamp uint64
	index int
}

// Queue is an indexed max-priority queue over match keys.
type Queue struct {
	heap  entryHeap
	index map[Key]*entry
	clock uint64
}

func NewQueue() *Queue {
	return &Queue{index: make(map[Key]*entry)}
}

func (queue *Queue) Len() int {
	return len(queue.heap)
}

func (queue *Queue) Push(key Key, priority int64) error {
	if _, found := queue.index[key]; found {
		return fmt.Errorf("queue %s: %w", key, ErrDuplicateMatch)
	}

	e := &entry{Entry: Entry{Key: key, Priority: priority}, stamp: queue.tick()}
	queue.index[key] = e
	heap.Push(&queue.heap, e)
	return nil
}

// Set changes the priority of an existing key.
func (queue *Queue) Set(key Key, priority int64) error {
	e, found := queue.index[key]
	if !found {
		return fmt.Errorf("queue %s: %w", key, ErrNotFound)
	}

	if e.Priority == priority {
		return nil
	}

	if priority < 0 && e.Priority >= 0 {
		e.stamp = queue.tick()
	}

	e.Priority = priority
	heap.Fix(&queue.heap, e.index)
	return nil
}

func (queue *Queue) Priority(key Key) (int64, bool) {
	e, found := queue.index[key]
	if !found {
		return 0, false
	}

	return e.Priority, true
}

func (queue *Queue) Remove(key Key) error {
	e, found := queue.index[key]
	if !found {
		return fmt.Errorf("queue %s: %w", key, ErrNotFound)
	}

	heap.Remove(&queue.heap, e.index)
	delete(queue.index, key)
	return nil
}

// Peek returns the highest priority entry without removing it.
func (queue *Queue) Peek() (Entry, bool) {
	if len(queue.heap) == 0 {
		return Entry{}, false
	}

	return queue.heap[0].Entry, true
}

// Sorted returns every entry, highest priority first.
func (queue *Queue) Sorted() []Entry {
	sorted := slices.Clone(queue.heap)
	slices.SortFunc(sorted, func(a, b *entry) int {
		switch {
		case before(a, b):
			return -1
		case before(b, a):
			return +1
		default:
			return 0
		}
	})

	entries := make([]Entry, len(sorted))
	for i, e := range sorted {
		entries[i] = e.Entry
	}

	return entries
}

func (queue *Queue) Clear() {
	queue.heap = nil
	queue.index = make(map[Key]*entry)
	queue.clock = 0
}

func (queue *Queue) tick() uint64 {
	queue.clock++
	return queue.clock
}

func before(a, b *entry) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}

	return a.stamp < b.stamp
}

// entryHeap implements heap.Interface.
type entryHeap []*entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return before(h[i], h[j]) }

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
