package effconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperblaze/ssenrah/claudecontract"
)

// skillFrontmatterKeyOrder mirrors agentFrontmatterKeyOrder but without the
// model/color fields skills don't carry.
var skillFrontmatterKeyOrder = []string{"name", "description", "tools"}

// ListSkills lists the skills in scope's skills directory ("user" or
// "project"). A skill is either a subdirectory containing a SKILL.md file, or
// a standalone .md file directly in the skills directory. A missing
// directory yields an empty list, not an error.
func ListSkills(scope string, projectRoot *string) ([]ResourceInfo, error) {
	dir, err := ResolveSkillsDir(scope, projectRoot)
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
		var name, path string
		if entry.IsDir() {
			candidate := filepath.Join(dir, entry.Name(), claudecontract.FileSkillMD)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			name = entry.Name()
			path = candidate
		} else if strings.HasSuffix(entry.Name(), ".md") {
			name = strings.TrimSuffix(entry.Name(), ".md")
			path = filepath.Join(dir, entry.Name())
		} else {
			continue
		}

		content, ok, err := readTextFile(path)
		if err != nil || !ok {
			continue
		}

		fm, body := splitFrontmatter(content)
		results = append(results, ResourceInfo{
			Name:        name,
			Scope:       scope,
			Frontmatter: fm,
			BodyPreview: previewRunes(body, agentBodyPreviewLength),
		})
	}

	return results, nil
}

// skillPath resolves the on-disk path for a skill by name, preferring the
// directory+SKILL.md form when both it and a standalone .md file could
// exist, and reporting which form was found.
func skillPath(dir, name string) (path string, isDirForm bool, err error) {
	dirForm := filepath.Join(dir, name, claudecontract.FileSkillMD)
	if _, statErr := os.Stat(dirForm); statErr == nil {
		return dirForm, true, nil
	}

	fileForm := filepath.Join(dir, name+".md")
	if _, statErr := os.Stat(fileForm); statErr == nil {
		return fileForm, false, nil
	}

	return "", false, NotFound(filepath.Join(dir, name))
}

// ReadSkill reads a single skill by name from scope.
func ReadSkill(scope string, projectRoot *string, name string) (ResourceContent, error) {
	dir, err := ResolveSkillsDir(scope, projectRoot)
	if err != nil {
		return ResourceContent{}, err
	}

	path, _, err := skillPath(dir, name)
	if err != nil {
		return ResourceContent{}, err
	}

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

// WriteSkill atomically writes a skill by name to scope, using the
// directory+SKILL.md form if one already exists there, and the standalone
// .md file form otherwise (the default for a brand new skill).
func WriteSkill(scope string, projectRoot *string, name string, content ResourceContent, w *Watcher) error {
	dir, err := ResolveSkillsDir(scope, projectRoot)
	if err != nil {
		return err
	}

	path, _, err := skillPath(dir, name)
	if err != nil {
		if engineErr, ok := AsEngineError(err); !ok || engineErr.Kind() != KindNotFound {
			return err
		}
		path = filepath.Join(dir, name+".md")
	}

	rendered := serializeFrontmatter(content.Frontmatter, skillFrontmatterKeyOrder, content.Body)

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, []byte(rendered))
}

// DeleteSkill removes a skill by name from scope, whichever on-disk form it
// takes.
func DeleteSkill(scope string, projectRoot *string, name string, w *Watcher) error {
	dir, err := ResolveSkillsDir(scope, projectRoot)
	if err != nil {
		return err
	}

	path, isDirForm, err := skillPath(dir, name)
	if err != nil {
		return err
	}

	if w != nil {
		w.MarkSelfWrite(path)
	}

	target := path
	if isDirForm {
		target = filepath.Dir(path)
		if err := os.RemoveAll(target); err != nil {
			return PlatformErr("failed to delete " + target + ": " + err.Error())
		}
		return nil
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return NotFound(target)
		}
		if os.IsPermission(err) {
			return PermissionDenied(target)
		}
		return PlatformErr("failed to delete " + target + ": " + err.Error())
	}
	return nil
}

// ReadSkillFile reads an auxiliary file (a reference, script, or asset)
// inside a directory-form skill's directory, identified by its relative
// path.
func ReadSkillFile(scope string, projectRoot *string, skillName, relPath string) (string, error) {
	dir, err := ResolveSkillsDir(scope, projectRoot)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, skillName, relPath)
	content, ok, err := readTextFile(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", NotFound(path)
	}
	return content, nil
}

// WriteSkillFile atomically writes an auxiliary file inside a directory-form
// skill's directory.
func WriteSkillFile(scope string, projectRoot *string, skillName, relPath, content string, w *Watcher) error {
	dir, err := ResolveSkillsDir(scope, projectRoot)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, skillName, relPath)
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, []byte(content))
}
