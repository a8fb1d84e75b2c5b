package domain

// Operation identifies a coordinator action for logging, tracing and error reports.
type Operation uint8

const (
	// OpReload is a plain discovery pass.
	OpReload Operation = iota
	// OpDeleteOne removes a single entry.
	OpDeleteOne
	// OpDeleteAll removes the whole DerivedData root.
	OpDeleteAll
	// OpDeleteModuleCache removes the module cache root.
	OpDeleteModuleCache
	// OpSweepZombies removes every entry whose project no longer exists.
	OpSweepZombies
)

var operationNames = [...]string{
	OpReload:            "reload",
	OpDeleteOne:         "delete",
	OpDeleteAll:         "delete-all",
	OpDeleteModuleCache: "delete-module-cache",
	OpSweepZombies:      "sweep-zombies",
}

// String returns the operation name.
func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return "unknown"
}

// Destructive reports whether the operation removes files.
func (o Operation) Destructive() bool {
	return o != OpReload
}
