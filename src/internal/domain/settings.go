package domain

type Settings struct {
	DarkMode bool
}

func DefaultSettings() Settings {
	return Settings{DarkMode: true}
}
