package util

import "gopkg.in/ini.v1"

// INI is a thin wrapper over gopkg.in/ini.v1, giving narkcore's callers a
// small, stable surface instead of exposing the full ini.v1 API. ini.v1
// keeps each section's comments attached to the key or section they
// precede, so a Load followed by Save reproduces the original file's
// layout without narkcore tracking line numbers itself.
type INI struct {
	file *ini.File
}

// LoadINI parses the INI-formatted data in path.
func LoadINI(path string) (*INI, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	return &INI{file: f}, nil
}

// NewINI returns an empty INI document.
func NewINI() *INI { return &INI{file: ini.Empty()} }

// Get returns the string value of key in section, or def if either the
// section or the key is absent.
func (d *INI) Get(section, key, def string) string {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return def
	}

	if !sec.HasKey(key) {
		return def
	}

	return sec.Key(key).String()
}

// GetInt returns the integer value of key in section, or def on absence
// or parse failure.
func (d *INI) GetInt(section, key string, def int) int {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return def
	}

	if !sec.HasKey(key) {
		return def
	}

	v, err := sec.Key(key).Int()
	if err != nil {
		return def
	}

	return v
}

// Set assigns key = value in section, creating the section if needed.
func (d *INI) Set(section, key, value string) {
	d.file.Section(section).Key(key).SetValue(value)
}

// Sections returns the names of every section in the document, including
// the implicit default section.
func (d *INI) Sections() []string {
	secs := d.file.Sections()
	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = s.Name()
	}

	return names
}

// Save writes the document back to path, preserving the original
// section/key/comment layout.
func (d *INI) Save(path string) error {
	return d.file.SaveTo(path)
}
