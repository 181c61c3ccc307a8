package settings

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings manages the application's persisted configuration: a JSON file of
// nested sections addressed by dot-notation keys, with defaults filling in
// anything the file doesn't carry. Constructed explicitly and passed to
// whoever needs it; there is no package-level instance.
type Settings struct {
	v    *viper.Viper
	path string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.theme", "dark")
	v.SetDefault("tasks.default_priority", "MEDIUM")
	v.SetDefault("tasks.default_due_days", 7)
	v.SetDefault("tasks.show_completed", true)
	v.SetDefault("tasks.sort", "created")
}

// New creates a Settings bound to the given file, merging the file's contents
// over the defaults if it exists
func New(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	s := &Settings{v: v, path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load re-reads the settings file. A missing file is not an error; the
// defaults stay in effect.
func (s *Settings) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return s.v.ReadInConfig()
}

// Save writes the current settings to disk, creating the directory if needed
func (s *Settings) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return s.v.WriteConfigAs(s.path)
}

// Set updates a value by dot-notation key; call Save to persist
func (s *Settings) Set(key string, value any) {
	s.v.Set(key, value)
}

// Get returns a value by dot-notation key
func (s *Settings) Get(key string) any {
	return s.v.Get(key)
}

func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

func (s *Settings) GetBool(key string) bool {
	return s.v.GetBool(key)
}

func (s *Settings) GetInt(key string) int {
	return s.v.GetInt(key)
}

// Path returns the settings file location
func (s *Settings) Path() string {
	return s.path
}
