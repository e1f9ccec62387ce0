package effconfig

import (
	"encoding/json"
	"strconv"
	"strings"
)

// frontmatterDelimiter marks the start and end of a YAML frontmatter block
// in an agent or skill markdown file.
const frontmatterDelimiter = "---"

// splitFrontmatter splits raw markdown content into its frontmatter block
// and body. If content has no leading "---" delimiter, the whole content is
// returned as the body with a nil frontmatter map.
func splitFrontmatter(content string) (map[string]any, string) {
	trimmed := strings.TrimLeft(content, "\n")
	if !strings.HasPrefix(trimmed, frontmatterDelimiter) {
		return nil, content
	}

	rest := trimmed[len(frontmatterDelimiter):]
	rest = strings.TrimPrefix(rest, "\n")

	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end == -1 {
		return nil, content
	}

	block := rest[:end]
	body := rest[end+len("\n"+frontmatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")

	return parseYAMLSimple(block), body
}

// parseYAMLSimple parses a restricted, line-oriented "key: value" subset of
// YAML sufficient for agent and skill frontmatter. It does not handle nested
// maps, multi-line scalars, or YAML's full type grammar.
func parseYAMLSimple(block string) map[string]any {
	result := make(map[string]any)

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx == -1 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		rawValue := strings.TrimSpace(line[idx+1:])
		if key == "" {
			continue
		}

		result[key] = parseYAMLScalar(rawValue)
	}

	return result
}

func parseYAMLScalar(raw string) any {
	if raw == "" || raw == "null" || raw == "~" {
		return nil
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		if inner == "" {
			return []string{}
		}
		items := strings.Split(inner, ",")
		values := make([]string, 0, len(items))
		for _, item := range items {
			values = append(values, unquote(strings.TrimSpace(item)))
		}
		return values
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	return unquote(raw)
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
			(strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// serializeFrontmatter renders frontmatter and body back into a markdown
// document with a leading "---" delimited block, followed directly by the
// body. An empty frontmatter map yields the body alone, with no block. Keys
// are emitted in the order given by keyOrder, falling back to an unspecified
// order for any key present in frontmatter but absent from keyOrder.
func serializeFrontmatter(frontmatter map[string]any, keyOrder []string, body string) string {
	if len(frontmatter) == 0 {
		return body
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")

	written := make(map[string]bool, len(frontmatter))
	for _, key := range keyOrder {
		value, ok := frontmatter[key]
		if !ok {
			continue
		}
		writeYAMLField(&b, key, value)
		written[key] = true
	}
	for key, value := range frontmatter {
		if written[key] {
			continue
		}
		writeYAMLField(&b, key, value)
	}

	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(body)

	return b.String()
}

func writeYAMLField(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	case bool:
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strconv.FormatBool(v))
		b.WriteString("\n")
	case float64:
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteString("\n")
	case int:
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(v))
		b.WriteString("\n")
	case []string:
		b.WriteString(key)
		b.WriteString(": [")
		b.WriteString(strings.Join(v, ", "))
		b.WriteString("]\n")
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.Write(encoded)
		b.WriteString("\n")
	}
}
