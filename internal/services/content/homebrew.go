package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// LoadHomebrew reads a homebrew catalog from a YAML or JSON file. Entries
// without an identifier are given one.
func LoadHomebrew(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("homebrew file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read homebrew file %s", path)
	}

	var catalog Catalog
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid homebrew json").
				WithMeta("path", path)
		}
	} else {
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid homebrew yaml").
				WithMeta("path", path)
		}
	}

	return WithIdentifiers(&catalog), nil
}
