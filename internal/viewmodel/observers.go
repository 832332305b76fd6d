package viewmodel

// observers is an explicit callback list. It is not safe for concurrent use.
type observers[T any] struct {
	next  int
	funcs map[int]func(T)
}

func (o *observers[T]) subscribe(fn func(T)) (unsubscribe func()) {
	if o.funcs == nil {
		o.funcs = make(map[int]func(T))
	}
	id := o.next
	o.next++
	o.funcs[id] = fn
	return func() { delete(o.funcs, id) }
}

// notify calls every subscriber in subscription order.
func (o *observers[T]) notify(v T) {
	for id := 0; id < o.next; id++ {
		if fn, ok := o.funcs[id]; ok {
			fn(v)
		}
	}
}
