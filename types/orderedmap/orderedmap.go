package orderedmap

import (
	"container/list"
)

// OrderedMap stores key/value pairs and iterates them in insertion order.
// Lookup and Set are O(1); iteration is O(n) over the insertion sequence.
// Command grammars rely on this for deterministic resolution: subcommand
// tables and name indexes must list their entries in declaration order.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	order *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Element is an iteration handle positioned on one key/value pair.
type Element[K comparable, V any] struct {
	Key   K
	Value V
	el    *list.Element
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		order: list.New(),
	}
}

// Set stores a key/value pair. Overwriting an existing key keeps its
// original position in the iteration order.
func (o *OrderedMap[K, V]) Set(key K, value V) {
	if el, exists := o.store[key]; exists {
		el.Value = entry[K, V]{key: key, value: value}
		return
	}
	o.store[key] = o.order.PushBack(entry[K, V]{key: key, value: value})
}

// Get returns the value associated with key, and whether it was present.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, exists := o.store[key]
	if !exists {
		var zero V
		return zero, false
	}
	return el.Value.(entry[K, V]).value, true
}

// Has reports whether key is present.
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (o *OrderedMap[K, V]) Delete(key K) {
	el, exists := o.store[key]
	if !exists {
		return
	}
	o.order.Remove(el)
	delete(o.store, key)
}

// Len returns the number of stored pairs.
func (o *OrderedMap[K, V]) Len() int {
	return o.order.Len()
}

// Keys returns all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.order.Len())
	for el := o.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(entry[K, V]).key)
	}
	return keys
}

// Front returns the element holding the oldest pair, or nil when empty.
//
//	for e := m.Front(); e != nil; e = e.Next() {
//	    _ = e.Key
//	    _ = e.Value
//	}
func (o *OrderedMap[K, V]) Front() *Element[K, V] {
	return wrap[K, V](o.order.Front())
}

// Back returns the element holding the newest pair, or nil when empty.
func (o *OrderedMap[K, V]) Back() *Element[K, V] {
	return wrap[K, V](o.order.Back())
}

// Next returns the element after e, or nil at the end.
func (e *Element[K, V]) Next() *Element[K, V] {
	return wrap[K, V](e.el.Next())
}

// Prev returns the element before e, or nil at the start.
func (e *Element[K, V]) Prev() *Element[K, V] {
	return wrap[K, V](e.el.Prev())
}

func wrap[K comparable, V any](el *list.Element) *Element[K, V] {
	if el == nil {
		return nil
	}
	kv := el.Value.(entry[K, V])
	return &Element[K, V]{Key: kv.key, Value: kv.value, el: el}
}
