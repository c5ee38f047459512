// Package scene holds the platform-independent client state: environment,
// cameras, texture packs and the rendering components.
package scene

// Component is a part of the client with a lifecycle tied to the game and
// to the loaded map.
type Component interface {
	// Init is called once after the graphics backend exists.
	Init()
	// Free releases everything the component owns.
	Free()
	// Reset drops per-session state, such as loaded textures.
	Reset()
	// OnNewMap is called after a new map and its environment are set up.
	OnNewMap()
}

// Components runs lifecycle calls over components in order.
type Components []Component

// Init initializes all components in registration order.
func (cs Components) Init() {
	for _, c := range cs {
		c.Init()
	}
}

// Free frees all components in reverse registration order.
func (cs Components) Free() {
	for i := len(cs) - 1; i >= 0; i-- {
		cs[i].Free()
	}
}

// Reset resets all components.
func (cs Components) Reset() {
	for _, c := range cs {
		c.Reset()
	}
}

// OnNewMap notifies all components of a new map.
func (cs Components) OnNewMap() {
	for _, c := range cs {
		c.OnNewMap()
	}
}
