// Package jsonfile persists the current plan and the plan archive as JSON
// files with atomic writes. Missing, empty, or corrupt files load as zero
// values; best-effort local storage is the contract, not durability.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// load reads and unmarshals path into out. Absent and empty files leave out
// untouched. A corrupt file is logged and treated the same way, so a bad
// write can never wedge startup.
func load(path string, out any, log zerolog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("corrupt data file, starting empty")
		return nil
	}

	return nil
}

// save marshals v indented and writes it atomically via tmp + rename.
func save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
