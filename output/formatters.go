// Package output serializes analysis results and merges them into the
// shared output document.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any, prettyPrint bool) ([]byte, error)
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "json", "":
		return &JSONFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "table":
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	if prettyPrint {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	return yaml.Marshal(data)
}

// CSVFormatter flattens the analysis result into a two-row CSV: one header
// row of field names, one row of values.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	flattened := ExtractFlattenedData(data, "")
	stringMap := ConvertToStringMap(flattened)

	keys := make([]string, 0, len(stringMap))
	for key := range stringMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = stringMap[key]
	}

	var result strings.Builder
	writer := csv.NewWriter(&result)

	for _, record := range [][]string{keys, values} {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return []byte(result.String()), nil
}

// TableFormatter formats the analysis result as a human-readable table
type TableFormatter struct{}

func (f *TableFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	flattened := ExtractFlattenedData(data, "")
	stringMap := ConvertToStringMap(flattened)

	keys := make([]string, 0, len(stringMap))
	labelWidth := 0
	titler := cases.Title(language.English)
	labels := make(map[string]string, len(stringMap))

	for key := range stringMap {
		keys = append(keys, key)
		label := titler.String(strings.ReplaceAll(key, "_", " "))
		labels[key] = label
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	sort.Strings(keys)

	var result strings.Builder
	result.WriteString("HLS ANALYSIS RESULTS\n")
	result.WriteString("====================\n\n")

	for _, key := range keys {
		value := stringMap[key]
		if value == "" {
			value = "-"
		}
		result.WriteString(fmt.Sprintf("%-*s  %s\n", labelWidth, labels[key], value))
	}

	return []byte(result.String()), nil
}

// ExtractFlattenedData extracts data from nested structures for tabular output
func ExtractFlattenedData(data any, prefix string) map[string]any {
	result := make(map[string]any)

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			fieldType := t.Field(i)

			if !field.CanInterface() {
				continue
			}

			key := prefix + strings.ToLower(fieldType.Name)
			value := field.Interface()

			if field.Kind() == reflect.Struct ||
				(field.Kind() == reflect.Ptr && !field.IsNil() && field.Elem().Kind() == reflect.Struct) {
				nested := ExtractFlattenedData(value, key+"_")
				maps.Copy(result, nested)
			} else {
				result[key] = value
			}
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			keyStr := fmt.Sprintf("%v", key.Interface())
			value := v.MapIndex(key).Interface()

			flatKey := prefix + strings.ToLower(keyStr)
			if value != nil && reflect.ValueOf(value).Kind() == reflect.Struct {
				nested := ExtractFlattenedData(value, flatKey+"_")
				maps.Copy(result, nested)
			} else {
				result[flatKey] = value
			}
		}
	default:
		result[prefix] = data
	}

	return result
}

// ConvertToStringMap converts various data types to string for CSV/table output
func ConvertToStringMap(data map[string]any) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		result[key] = ConvertValueToString(value)
	}

	return result
}

// ConvertValueToString converts a single value to string representation
func ConvertValueToString(value any) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(v).Float(), 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return strings.Join(v, "; ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
