package eviction

import "container/list"

// lru keeps an explicit access-order list with move-to-front semantics.
// The least recently used key sits at the back.
type lru struct {
	order *list.List
	index map[string]*list.Element
}

func newLRU() *lru {
	return &lru{order: list.New(), index: make(map[string]*list.Element)}
}

func (l *lru) OnInsert(key string) {
	if el, ok := l.index[key]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.index[key] = l.order.PushFront(key)
}

func (l *lru) OnAccess(key string) {
	if el, ok := l.index[key]; ok {
		l.order.MoveToFront(el)
	}
}

func (l *lru) OnRemove(key string) {
	if el, ok := l.index[key]; ok {
		l.order.Remove(el)
		delete(l.index, key)
	}
}

func (l *lru) Victims(n int) []string {
	victims := make([]string, 0, n)
	for len(victims) < n {
		el := l.order.Back()
		if el == nil {
			break
		}
		key := el.Value.(string)
		l.order.Remove(el)
		delete(l.index, key)
		victims = append(victims, key)
	}
	return victims
}

func (l *lru) Reset() {
	l.order.Init()
	clear(l.index)
}
