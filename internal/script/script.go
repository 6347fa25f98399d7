package script

// Script describes the content of one scripted screen, loaded from a YAML file.
type Script struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Items       []Item `yaml:"items"`
}

// Item is a single selectable list entry.
type Item struct {
	Action      string `yaml:"action"`
	Description string `yaml:"description,omitempty"`
}

// DisplayTitle returns the title, falling back to the script name.
func (s Script) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}

	return s.Name
}
