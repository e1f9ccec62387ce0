package effconfig

import (
	"encoding/json"
	"os"
)

// readJSONFile reads and parses a JSON object file at path. It returns
// (value, true, nil) when the file exists and parses; (nil, false, nil) when
// the file is absent (never an error at this layer); and (nil, false, err)
// for permission errors, parse errors, or any other I/O failure.
func readJSONFile(path string) (map[string]any, bool, error) {
	contents, ok, err := readFile(path)
	if err != nil || !ok {
		return nil, ok, err
	}

	var value map[string]any
	if err := json.Unmarshal(contents, &value); err != nil {
		return nil, false, ParseErr(path, err.Error())
	}
	return value, true, nil
}

// readFile reads a file's raw bytes, classifying absence as (nil, false,
// nil) rather than an error.
func readFile(path string) ([]byte, bool, error) {
	contents, err := os.ReadFile(path)
	if err == nil {
		return contents, true, nil
	}
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if os.IsPermission(err) {
		return nil, false, PermissionDenied(path)
	}
	return nil, false, PlatformErr("failed to read " + path + ": " + err.Error())
}

// readTextFile reads a file's contents as a string, classifying absence as
// (\"\", false, nil).
func readTextFile(path string) (string, bool, error) {
	contents, ok, err := readFile(path)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(contents), true, nil
}
