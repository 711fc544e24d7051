package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// so new Settings fields show up without extra wiring
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"toggle": "enter",
			"quit":   []string{"q", "esc"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "merge_timeout_seconds":
				return int(DefaultMergeTimeout.Seconds())
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "default_target_branch":
			return DefaultTargetBranch
		case "merge_author_email":
			return "gitwatch@example.com"
		case "merge_author_name":
			return "GitWatch"
		case "repos_path":
			return "~/.gitwatch/repos"
		case "user":
			return "admin"
		default:
			return "example"
		}
	}

	return nil
}
