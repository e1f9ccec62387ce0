package effconfig

import "encoding/json"

// mcpServersKey is the sub-object within ~/.claude.json that holds the
// user-scope MCP server definitions; every other top-level key in that file
// belongs to the CLI itself and must be preserved untouched.
const mcpServersKey = "mcpServers"

// ReadMCPConfig reads the MCP server configuration for source ("project",
// "user", or "managed"). For "user", only the mcpServers sub-object of
// ~/.claude.json is returned, wrapped as {"mcpServers": ...}; an existing file
// without that key yields an empty mcpServers object.
func ReadMCPConfig(source string, projectRoot *string) (map[string]any, bool, error) {
	path, err := ResolveMCPPath(source, projectRoot)
	if err != nil {
		return nil, false, err
	}

	doc, ok, err := readJSONFile(path)
	if err != nil || !ok {
		return nil, ok, err
	}

	if source != "user" {
		return doc, true, nil
	}

	servers, ok := doc[mcpServersKey].(map[string]any)
	if !ok {
		servers = map[string]any{}
	}
	return map[string]any{mcpServersKey: servers}, true, nil
}

// WriteMCPConfig atomically writes servers as the MCP server configuration
// for source ("project" or "user"). Managed MCP config is read-only.
//
// For "user", the existing ~/.claude.json is loaded first and only its
// mcpServers key is replaced; every other top-level key (CLI session state,
// OAuth accounts, and so on) is preserved as-is.
func WriteMCPConfig(source string, projectRoot *string, servers map[string]any, w *Watcher) error {
	if source == "managed" {
		return PlatformErr("managed MCP configuration is read-only")
	}

	path, err := ResolveMCPPath(source, projectRoot)
	if err != nil {
		return err
	}

	var doc map[string]any
	if source == "user" {
		existing, ok, err := readJSONFile(path)
		if err != nil {
			return err
		}
		if ok {
			doc = existing
		} else {
			doc = map[string]any{}
		}
		doc[mcpServersKey] = servers
	} else {
		doc = servers
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return WriteFailed(path, "failed to encode MCP config: "+err.Error())
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, content)
}
