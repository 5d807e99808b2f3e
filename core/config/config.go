// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML and YAML configuration files, exposes typed
//              getters with dot-notation keys and defaults, and lets
//              prefixed environment variables override file values.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-01
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-06 v0.1.1: Format detection via stringx, environment lookups
//                      without caching
// - 2026-10-15 v0.1.2: FormatAuto is the zero value of Format

package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	tuerror "github.com/msto63/typeutils/core/error"
	"github.com/msto63/typeutils/core/log"
	"github.com/msto63/typeutils/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension. It is the zero
	// value, so LoadOptions without a Format auto-detect.
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the environment prefix used by the typeutils command
const DefaultEnvPrefix = "TYPEUTILS"

// Config is a loaded configuration with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	defaults  map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	logger    *log.Logger

	changeHandlers []ChangeHandler
	errorHandlers  []ErrorHandler

	watcher      *fsnotify.Watcher
	stopWatch    func()
	watchDone    chan struct{}
	reloads      sync.WaitGroup
	lastModified time.Time
}

// ChangeHandler is called after a successful reload with snapshots of the
// configuration before and after the change
type ChangeHandler func(oldConfig, newConfig *Config)

// ErrorHandler is called when a reload fails. The previous data stays active.
type ErrorHandler func(err error)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment prefix, empty disables overrides
	Defaults  map[string]interface{} // Values used when the file omits a key
	Watch     bool                   // Start watching the file after loading
	Logger    *log.Logger            // Logger for reload events (default: log.GetDefault)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, tuerror.New("config file path cannot be empty").
			WithCode(tuerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, tuerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(tuerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tuerror.Wrap(err, "failed to read config file").
			WithCode(tuerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tuerror.Wrap(err, "failed to parse config file").
			WithCode(tuerror.CodeInvalidFormat).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	logger := options.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	config := &Config{
		data:      data,
		defaults:  deepCopyMap(options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		logger:    logger.WithName("config"),
	}
	if info != nil {
		config.lastModified = info.ModTime()
	}

	if options.Watch {
		if err := config.Watch(context.Background()); err != nil {
			return nil, err
		}
	}

	config.logger.Debug("configuration loaded", log.Fields{
		"path":   filePath,
		"format": format.String(),
		"keys":   len(data),
	})
	return config, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tuerror.Wrap(err, "failed to parse config from string").
			WithCode(tuerror.CodeInvalidFormat).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
		logger: log.GetDefault().WithName("config"),
	}, nil
}

// detectFormat maps "yaml" and "yml" extensions to YAML, everything else to TOML
func detectFormat(filePath string) Format {
	switch strings.ToLower(stringx.GetFileExtension(filePath)) {
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, tuerror.Wrap(err, "TOML parse error").
				WithCode(tuerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, tuerror.Wrap(err, "YAML parse error").
				WithCode(tuerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, tuerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tuerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.lookup(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.lookup(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.lookup(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a duration value. Strings are parsed with
// time.ParseDuration, integers are taken as nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if envValue, ok := c.getEnvValue(key); ok {
		if duration, err := time.ParseDuration(envValue); err == nil {
			return duration
		}
	}

	switch v := c.lookup(key).(type) {
	case string:
		if duration, err := time.ParseDuration(v); err == nil {
			return duration
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice. An environment override is split
// on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if envValue, ok := c.getEnvValue(key); ok {
		parts := strings.Split(envValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	switch v := c.lookup(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// lookup finds key in the file data, then in the load defaults
func (c *Config) lookup(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value := getPath(c.data, key); value != nil {
		return value
	}
	return getPath(c.defaults, key)
}

func getPath(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue looks up PREFIX_SECTION_KEY. Overrides are disabled without a prefix.
func (c *Config) getEnvValue(key string) (string, bool) {
	envKey := c.EnvKey(key)
	if envKey == "" {
		return "", false
	}
	value, ok := os.LookupEnv(envKey)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey returns the environment variable that overrides key, e.g.
// "stringx.ellipsis" becomes TYPEUTILS_STRINGX_ELLIPSIS. It returns ""
// when no prefix is configured.
func (c *Config) EnvKey(key string) string {
	c.mu.RLock()
	prefix := c.envPrefix
	c.mu.RUnlock()

	if prefix == "" {
		return ""
	}
	return strings.ToUpper(prefix) + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Has checks if a configuration key exists in the file or the defaults
func (c *Config) Has(key string) bool {
	return c.lookup(key) != nil
}

// Set sets a configuration value at runtime. Intermediate sections are created.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of the file data merged over the defaults
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return mergeMaps(deepCopyMap(c.defaults), deepCopyMap(c.data))
}

// mergeMaps overlays src onto dst, descending into sections present in both
func mergeMaps(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		srcSection, srcOK := v.(map[string]interface{})
		dstSection, dstOK := dst[k].(map[string]interface{})
		if srcOK && dstOK {
			dst[k] = mergeMaps(dstSection, srcSection)
			continue
		}
		dst[k] = v
	}
	return dst
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// LastModified returns the modification time of the file at the last load
func (c *Config) LastModified() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastModified
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// Keys returns the top-level keys in sorted order
func (c *Config) Keys() []string {
	all := c.GetAll()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// snapshot returns a detached copy used for change notifications
func (c *Config) snapshot() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		data:      deepCopyMap(c.data),
		defaults:  deepCopyMap(c.defaults),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		logger:    c.logger,
	}
}

func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format.String())}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	if c.watcher != nil {
		parts = append(parts, "watching: true")
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
