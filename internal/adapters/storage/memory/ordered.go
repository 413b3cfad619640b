package memory

import "sync"

// ordered guarda registros por id conservando el orden de alta.
type ordered[T any] struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]T
}

func newOrdered[T any]() *ordered[T] {
	return &ordered[T]{byID: make(map[string]T)}
}

func (o *ordered[T]) insert(id string, v T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.byID[id]; exists {
		return false
	}
	o.byID[id] = v
	o.order = append(o.order, id)
	return true
}

// replace no cambia la posición del registro.
func (o *ordered[T]) replace(id string, v T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.byID[id]; !exists {
		return false
	}
	o.byID[id] = v
	return true
}

func (o *ordered[T]) remove(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.byID[id]; !exists {
		return false
	}
	delete(o.byID, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

func (o *ordered[T]) get(id string) (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	v, ok := o.byID[id]
	return v, ok
}

func (o *ordered[T]) filter(keep func(T) bool) []T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range o.order {
		if v := o.byID[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
