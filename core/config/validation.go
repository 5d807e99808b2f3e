// File: validation.go
// Title: Configuration Validation
// Description: Validates configuration values against declarative rules:
//              presence, type, numeric or length bounds and allowed values.
//              Missing optional keys with a default are filled in.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-02
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-06 v0.1.1: Allowed values, defaults applied after the read lock

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/msto63/typeutils/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Key must be present
	Type     string      // "string", "int", "bool", "duration" or "[]string"
	Min      interface{} // Minimum value for ints, minimum length for strings and slices
	Max      interface{} // Maximum value for ints, maximum length for strings and slices
	Allowed  []string    // Permitted values, compared after formatting with %v
	Default  interface{} // Value set when the key is missing
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	Keys   []string `json:"keys,omitempty"`
}

// Err returns nil for a valid result, otherwise an INVALID_CONFIG error for
// the first failing key with all messages attached
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return errors.ConfigInvalid(r.Keys[0], nil, strings.Join(r.Errors, "; ")).
		WithDetail("errors", append([]string(nil), r.Errors...))
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so that messages are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rule := rules[key]
		value := c.lookup(key)

		if value == nil {
			if rule.Required {
				result.fail(key, fmt.Sprintf("required field '%s' is missing", key))
			} else if rule.Default != nil {
				c.Set(key, rule.Default)
			}
			continue
		}

		if err := validateValue(key, value, rule); err != nil {
			result.fail(key, err.Error())
		}
	}

	return result
}

func (r *ValidationResult) fail(key, message string) {
	r.Valid = false
	r.Keys = append(r.Keys, key)
	r.Errors = append(r.Errors, message)
}

func validateValue(key string, value interface{}, rule ValidationRule) error {
	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if _, ok := asInt(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "duration":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a duration string, got %T", key, value)
		}
		if _, err := time.ParseDuration(s); err != nil {
			return fmt.Errorf("field '%s' must be a valid duration, got '%s'", key, s)
		}
	case "[]string":
		if _, ok := value.([]interface{}); !ok {
			if _, ok := value.([]string); !ok {
				return fmt.Errorf("field '%s' must be a list of strings, got %T", key, value)
			}
		}
	default:
		return fmt.Errorf("field '%s' has unknown rule type '%s'", key, rule.Type)
	}

	if err := validateBounds(key, value, rule); err != nil {
		return err
	}

	if len(rule.Allowed) > 0 {
		actual := fmt.Sprintf("%v", value)
		for _, allowed := range rule.Allowed {
			if actual == allowed {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of [%s], got '%s'", key, strings.Join(rule.Allowed, ", "), actual)
	}
	return nil
}

// validateBounds compares ints by value and strings and lists by length
func validateBounds(key string, value interface{}, rule ValidationRule) error {
	if rule.Min == nil && rule.Max == nil {
		return nil
	}

	var measured int
	var what string
	switch v := value.(type) {
	case string:
		measured, what = len(v), "length"
	case []interface{}:
		measured, what = len(v), "length"
	case []string:
		measured, what = len(v), "length"
	default:
		n, ok := asInt(value)
		if !ok {
			return nil
		}
		measured, what = n, "value"
	}

	if min, ok := asInt(rule.Min); ok && measured < min {
		return fmt.Errorf("field '%s' %s %d is below minimum %d", key, what, measured, min)
	}
	if max, ok := asInt(rule.Max); ok && measured > max {
		return fmt.Errorf("field '%s' %s %d is above maximum %d", key, what, measured, max)
	}
	return nil
}

// asInt accepts the integer shapes produced by the TOML and YAML decoders
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
