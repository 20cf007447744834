package deps

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Bootstrap runs ignitors in order and stops at the first failure.
// Backends opened before the failure are released.
func Bootstrap(ignitors ...Ignitor) (Deps, error) {
	if len(ignitors) == 0 {
		ignitors = []Ignitor{
			IgniteConfig,
			IgniteLogger,
			IgniteExceptions,
			IgniteStorage,
		}
	}

	container := Deps{}
	for _, fn := range ignitors {
		next, err := fn(container)
		if err != nil {
			container.Close()
			return Deps{}, err
		}
		container = next
	}
	return container, nil
}
