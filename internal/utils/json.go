package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when a response contains no JSON object or array.
var ErrNoJSON = errors.New("no JSON found in response")

// ExtractAndParseJSON extracts the first JSON value from an LLM response and unmarshals it.
// Markdown fences and trailing prose are ignored. The only repair is escaping literal
// control characters inside strings; any other syntax error is returned.
func ExtractAndParseJSON[T any](response string) (T, error) {
	var result T

	jsonPart, err := ExtractJSON(response)
	if err != nil {
		return result, err
	}

	// Decoder parses a single JSON value and ignores the rest,
	// which handles cases like: {"a":1} some trailing text
	decoder := json.NewDecoder(strings.NewReader(jsonPart))
	decoder.UseNumber()
	if err := decoder.Decode(&result); err != nil {
		repaired := repairJSON(jsonPart)
		if repaired != jsonPart {
			var retry T
			dec2 := json.NewDecoder(strings.NewReader(repaired))
			dec2.UseNumber()
			if err2 := dec2.Decode(&retry); err2 == nil {
				return retry, nil
			}
		}
		return result, fmt.Errorf("parse JSON: %w", err)
	}

	return result, nil
}

// ExtractJSON returns the response text starting at the first '{' or '['.
func ExtractJSON(response string) (string, error) {
	cleaned := cleanLLMResponse(response)
	if cleaned == "" {
		return "", ErrNoJSON
	}

	// Some models return the object as a quoted JSON string.
	if strings.HasPrefix(cleaned, `"`) {
		var asString string
		if err := json.Unmarshal([]byte(cleaned), &asString); err == nil {
			return ExtractJSON(asString)
		}
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		return "", ErrNoJSON
	}
	return cleaned[idx:], nil
}

// repairJSON fixes syntax errors that do not change the meaning of the payload.
// LLMs often output literal tabs and newlines inside strings.
func repairJSON(input string) string {
	return sanitizeControlChars(input)
}

// sanitizeControlChars escapes literal control characters inside JSON strings.
func sanitizeControlChars(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	inString := false
	escaped := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if escaped {
			result.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			result.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			result.WriteByte(c)
			continue
		}

		if !inString {
			result.WriteByte(c)
			continue
		}

		switch c {
		case '\t':
			result.WriteString(`\t`)
		case '\n':
			result.WriteString(`\n`)
		case '\r':
			result.WriteString(`\r`)
		default:
			if c < 0x20 {
				result.WriteString(fmt.Sprintf(`\u%04x`, c))
			} else {
				result.WriteByte(c)
			}
		}
	}

	return result.String()
}

// cleanLLMResponse strips surrounding whitespace and markdown code fences.
func cleanLLMResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")

	return strings.TrimSpace(response)
}
