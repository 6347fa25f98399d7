package app

const (
	Name    = "icetool"
	Author  = "Andrea Grandi"
	License = "MIT"
)

var Version = "0.1.0"

type App struct {
	Name    string
	Version string
	Author  string
	License string
}

func New() *App {
	return &App{
		Name:    Name,
		Version: Version,
		Author:  Author,
		License: License,
	}
}

func (a *App) GetFullVersion() string {
	return a.Name + " version " + a.Version
}

// Title is the label shown at the top of the interactive shell.
func (a *App) Title() string {
	if a.Version == "" {
		return a.Name
	}

	return a.Name + " v" + a.Version
}
