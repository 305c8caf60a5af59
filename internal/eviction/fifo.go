package eviction

import "container/list"

// fifo keeps keys in insertion order and ignores the access pattern entirely.
// Victims are the oldest inserts, at the front of the list.
type fifo struct {
	order *list.List
	index map[string]*list.Element
}

func newFIFO() *fifo {
	return &fifo{order: list.New(), index: make(map[string]*list.Element)}
}

func (f *fifo) OnInsert(key string) {
	if _, ok := f.index[key]; ok {
		return
	}
	f.index[key] = f.order.PushBack(key)
}

func (f *fifo) OnAccess(string) {}

func (f *fifo) OnRemove(key string) {
	if el, ok := f.index[key]; ok {
		f.order.Remove(el)
		delete(f.index, key)
	}
}

func (f *fifo) Victims(n int) []string {
	victims := make([]string, 0, n)
	for len(victims) < n {
		el := f.order.Front()
		if el == nil {
			break
		}
		key := el.Value.(string)
		f.order.Remove(el)
		delete(f.index, key)
		victims = append(victims, key)
	}
	return victims
}

func (f *fifo) Reset() {
	f.order.Init()
	clear(f.index)
}
