package fs

// NewLocatorWithHome exposes a Locator with an injected home directory lookup.
func NewLocatorWithHome(override string, home func() (string, error)) *Locator {
	return &Locator{override: override, homeDir: home}
}
