// Package ssenrah is the root of a configuration backend for a Claude Code
// desktop companion GUI.
//
// The module computes the effective, merged configuration for a project by
// layering four scopes in increasing precedence - user, project,
// project-local, and organization-managed - and exposes that effective view,
// together with CRUD access to the underlying resource files (settings,
// project memory, MCP servers, agents, skills) and a live file-change
// watcher, through the engine in internal/effconfig.
//
// # Layout
//
//   - internal/effconfig: scope resolution, atomic writes, the merge engine,
//     resource stores, and the file watcher (C1-C7 in the design notes)
//   - internal/platformdetect: OS, WSL, shell, and CLI binary detection
//   - internal/lockfile: advisory single-instance lock for the backend process
//   - internal/backendlog: structured logging for the backend process
//   - claudecontract: shared constants describing the Claude Code CLI's file
//     layout, permission modes, and hook events
//   - cmd/ssenrah-core: the backend's process entry point
//
// # Design Philosophy
//
//   - Absence of a config file is never an error; malformed content is
//   - Every write is atomic: a temp file is renamed into place or not written
//     at all
//   - The merge engine is a pure function of four JSON documents; all I/O
//     lives at the edges
package ssenrah
