package repository

// LoaderOption applies a configuration option to the Loader.
type LoaderOption func(*Loader)

// WithPackagesFile overrides the packages CSV file name.
func WithPackagesFile(name string) LoaderOption {
	return func(l *Loader) {
		if name != "" {
			l.packagesFile = name
		}
	}
}

// WithGamesFile overrides the games CSV file name.
func WithGamesFile(name string) LoaderOption {
	return func(l *Loader) {
		if name != "" {
			l.gamesFile = name
		}
	}
}

// WithOffersFile overrides the offers CSV file name.
func WithOffersFile(name string) LoaderOption {
	return func(l *Loader) {
		if name != "" {
			l.offersFile = name
		}
	}
}
