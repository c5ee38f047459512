// Package event provides a synchronous event bus for engine components.
package event

// Kind identifies a class of events.
type Kind int

// Event kinds raised by the engine.
const (
	TextureFileChanged Kind = iota // a file inside the active texture pack changed
	TexturePackChanged             // a different texture pack was selected
	EnvVarChanged                  // a world environment variable changed
	ContextLost                    // GPU resources became invalid
	ContextRecreated               // GPU resources can be created again
)

var kindNames = [...]string{
	TextureFileChanged: "texture_file_changed",
	TexturePackChanged: "texture_pack_changed",
	EnvVarChanged:      "env_var_changed",
	ContextLost:        "context_lost",
	ContextRecreated:   "context_recreated",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is a payload carried by the bus.
// Payload structs are declared by the package that raises them.
type Event interface {
	Kind() Kind
}

// Listener receives events it subscribed to.
type Listener interface {
	HandleEvent(e Event)
}
