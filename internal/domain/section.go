package domain

// Section is one header+panel pair of a document
type Section struct {
	Title string `yaml:"title" toml:"title"`
	Body  string `yaml:"body" toml:"body"`
}

// Document is an ordered list of sections loaded from a file
type Document struct {
	Title    string    `yaml:"title" toml:"title"`
	Path     string    `yaml:"-" toml:"-"`
	Sections []Section `yaml:"sections" toml:"sections"`
}

// Titles returns the section titles in order
func (d *Document) Titles() []string {
	titles := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		titles[i] = s.Title
	}
	return titles
}
