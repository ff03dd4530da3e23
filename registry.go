package sdlbridge

import (
	"errors"
	"maps"
	"slices"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/native"
)

// ErrWindowRegistered is returned by Register when the native id or the
// entity already has an entry.
var ErrWindowRegistered = errors.New("sdlbridge: window already registered")

// WindowRegistry maps native window ids to engine entities and back, and
// owns the native windows. It is confined to the main thread.
type WindowRegistry struct {
	entities map[native.WindowID]donburi.Entity
	ids      map[donburi.Entity]native.WindowID
	windows  map[native.WindowID]native.Window
}

// NewWindowRegistry returns an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{
		entities: make(map[native.WindowID]donburi.Entity),
		ids:      make(map[donburi.Entity]native.WindowID),
		windows:  make(map[native.WindowID]native.Window),
	}
}

// Register records that win, identified by id, belongs to entity. Nothing
// changes when either side is already registered.
func (r *WindowRegistry) Register(id native.WindowID, entity donburi.Entity, win native.Window) error {
	if _, ok := r.entities[id]; ok {
		return ErrWindowRegistered
	}
	if _, ok := r.ids[entity]; ok {
		return ErrWindowRegistered
	}
	r.entities[id] = entity
	r.ids[entity] = id
	r.windows[id] = win
	return nil
}

// Entity returns the entity owning the native window id.
func (r *WindowRegistry) Entity(id native.WindowID) (donburi.Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// NativeID returns the native window id of entity.
func (r *WindowRegistry) NativeID(entity donburi.Entity) (native.WindowID, bool) {
	id, ok := r.ids[entity]
	return id, ok
}

// EntityAndScale returns the entity owning id together with the window's
// current display scale.
func (r *WindowRegistry) EntityAndScale(id native.WindowID) (donburi.Entity, float32, bool) {
	e, ok := r.entities[id]
	if !ok {
		return donburi.Null, 0, false
	}
	scale := float32(1)
	if win := r.windows[id]; win != nil {
		if s := win.DisplayScale(); s > 0 {
			scale = s
		}
	}
	return e, scale, true
}

// Window returns the native window of entity.
func (r *WindowRegistry) Window(entity donburi.Entity) (native.Window, bool) {
	id, ok := r.ids[entity]
	if !ok {
		return nil, false
	}
	return r.windows[id], true
}

// Deregister removes entity's entry and hands back its native window. The
// caller is responsible for destroying it.
func (r *WindowRegistry) Deregister(entity donburi.Entity) (native.Window, bool) {
	id, ok := r.ids[entity]
	if !ok {
		return nil, false
	}
	win := r.windows[id]
	delete(r.ids, entity)
	delete(r.entities, id)
	delete(r.windows, id)
	return win, true
}

// Len returns the number of registered windows.
func (r *WindowRegistry) Len() int {
	return len(r.entities)
}

// Each calls fn for every entry in ascending native id order. fn must not
// modify the registry.
func (r *WindowRegistry) Each(fn func(id native.WindowID, entity donburi.Entity)) {
	for _, id := range slices.Sorted(maps.Keys(r.entities)) {
		fn(id, r.entities[id])
	}
}
