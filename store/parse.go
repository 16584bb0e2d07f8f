/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/shomer/token"
)

// ParseDocument parses JSON or YAML token document content into a raw tree.
// JSON may carry comments and trailing commas; YAML numeric keys are
// normalized to strings.
func ParseDocument(data []byte) (map[string]any, error) {
	if isLikelyJSON(data) {
		clean := jsonc.ToJSON(data)
		var raw map[string]any
		if err := json.Unmarshal(clean, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalized := normalizeMap(yamlRaw)
	raw, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object")
	}
	return raw, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "500:") creates map[any]any, which must
// be normalized for string-keyed traversal.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// Flatten walks a raw token tree depth-first and collects every token
// leaf with its full dotted path. Keys beginning with $ are reserved
// metadata and never become path segments. A group's $type is inherited
// by descendant tokens that do not declare their own.
func Flatten(root map[string]any, filePath string) []*token.Token {
	var result []*token.Token
	flattenInto(root, nil, "", filePath, &result)
	return result
}

func flattenInto(node map[string]any, path token.Path, inheritedType, filePath string, result *[]*token.Token) {
	currentType := inheritedType
	if groupType, ok := node["$type"].(string); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(node))
	for k := range node {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := path.Child(key)

		if rawValue, isToken := child["$value"]; isToken {
			t := &token.Token{
				Path:     childPath,
				Value:    Stringify(rawValue),
				RawValue: rawValue,
				Type:     currentType,
				FilePath: filePath,
			}
			if typeStr, ok := child["$type"].(string); ok {
				t.Type = typeStr
			}
			if desc, ok := child["$description"].(string); ok {
				t.Description = desc
			}
			*result = append(*result, t)
			continue
		}

		flattenInto(child, childPath, currentType, filePath, result)
	}
}

// Stringify converts a raw $value to its string form: strings verbatim,
// numbers without exponent notation, booleans as true/false, and
// composite values as compact JSON.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(data)
	}
}
