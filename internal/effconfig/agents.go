package effconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// agentBodyPreviewLength caps the body preview returned when listing agents,
// measured in characters rather than bytes.
const agentBodyPreviewLength = 200

// agentFrontmatterKeyOrder is the field order used when serializing an
// agent's frontmatter block, matching the order Claude Code itself writes.
var agentFrontmatterKeyOrder = []string{"name", "description", "tools", "model", "color"}

// ListAgents lists the agent markdown files in scope's agents directory
// ("user" or "project"). A missing directory yields an empty list, not an
// error.
func ListAgents(scope string, projectRoot *string) ([]ResourceInfo, error) {
	dir, err := ResolveAgentsDir(scope, projectRoot)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ResourceInfo{}, nil
		}
		if os.IsPermission(err) {
			return nil, PermissionDenied(dir)
		}
		return nil, PlatformErr("failed to list " + dir + ": " + err.Error())
	}

	results := make([]ResourceInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		content, ok, err := readTextFile(filepath.Join(dir, entry.Name()))
		if err != nil || !ok {
			continue
		}

		fm, body := splitFrontmatter(content)
		results = append(results, ResourceInfo{
			Name:        strings.TrimSuffix(entry.Name(), ".md"),
			Scope:       scope,
			Frontmatter: fm,
			BodyPreview: previewRunes(body, agentBodyPreviewLength),
		})
	}

	return results, nil
}

// ReadAgent reads a single agent by name from scope.
func ReadAgent(scope string, projectRoot *string, name string) (ResourceContent, error) {
	dir, err := ResolveAgentsDir(scope, projectRoot)
	if err != nil {
		return ResourceContent{}, err
	}

	path := filepath.Join(dir, name+".md")
	content, ok, err := readTextFile(path)
	if err != nil {
		return ResourceContent{}, err
	}
	if !ok {
		return ResourceContent{}, NotFound(path)
	}

	fm, body := splitFrontmatter(content)
	return ResourceContent{Frontmatter: fm, Body: body}, nil
}

// WriteAgent atomically writes a single agent file by name to scope.
func WriteAgent(scope string, projectRoot *string, name string, content ResourceContent, w *Watcher) error {
	dir, err := ResolveAgentsDir(scope, projectRoot)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name+".md")
	rendered := serializeFrontmatter(content.Frontmatter, agentFrontmatterKeyOrder, content.Body)

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, []byte(rendered))
}

// DeleteAgent removes a single agent file by name from scope.
func DeleteAgent(scope string, projectRoot *string, name string, w *Watcher) error {
	dir, err := ResolveAgentsDir(scope, projectRoot)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name+".md")
	if w != nil {
		w.MarkSelfWrite(path)
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return NotFound(path)
		}
		if os.IsPermission(err) {
			return PermissionDenied(path)
		}
		return PlatformErr("failed to delete " + path + ": " + err.Error())
	}
	return nil
}

// previewRunes returns the first n runes of s, so multi-byte characters
// aren't split mid-codepoint.
func previewRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
