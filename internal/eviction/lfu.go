package eviction

import "sort"

// lfu buckets keys by cumulative access count. Victims come from the lowest
// populated bucket; ties within a bucket fall in map iteration order.
type lfu struct {
	freqs   map[string]int64
	buckets map[int64]map[string]struct{}
}

func newLFU() *lfu {
	return &lfu{
		freqs:   make(map[string]int64),
		buckets: make(map[int64]map[string]struct{}),
	}
}

func (l *lfu) OnInsert(key string) {
	if _, ok := l.freqs[key]; ok {
		return
	}
	l.freqs[key] = 0
	l.bucket(0)[key] = struct{}{}
}

func (l *lfu) OnAccess(key string) {
	freq, ok := l.freqs[key]
	if !ok {
		return
	}
	l.unbucket(key, freq)
	l.freqs[key] = freq + 1
	l.bucket(freq + 1)[key] = struct{}{}
}

func (l *lfu) OnRemove(key string) {
	freq, ok := l.freqs[key]
	if !ok {
		return
	}
	l.unbucket(key, freq)
	delete(l.freqs, key)
}

func (l *lfu) Victims(n int) []string {
	freqs := make([]int64, 0, len(l.buckets))
	for freq := range l.buckets {
		freqs = append(freqs, freq)
	}
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })

	victims := make([]string, 0, n)
	for _, freq := range freqs {
		for key := range l.buckets[freq] {
			if len(victims) >= n {
				return victims
			}
			l.unbucket(key, freq)
			delete(l.freqs, key)
			victims = append(victims, key)
		}
	}
	return victims
}

func (l *lfu) Reset() {
	clear(l.freqs)
	clear(l.buckets)
}

func (l *lfu) bucket(freq int64) map[string]struct{} {
	b, ok := l.buckets[freq]
	if !ok {
		b = make(map[string]struct{})
		l.buckets[freq] = b
	}
	return b
}

func (l *lfu) unbucket(key string, freq int64) {
	if b, ok := l.buckets[freq]; ok {
		delete(b, key)
		if len(b) == 0 {
			delete(l.buckets, freq)
		}
	}
}
