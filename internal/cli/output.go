package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// sequenceView is the structured form of one platform's hierarchy.
type sequenceView struct {
	Platform        string         `json:"platform" yaml:"platform"`
	CollectionTypes types.Sequence `json:"collection_types" yaml:"collection_types"`
}

// render writes v in the configured format. text is called for the text
// format and writes the human-readable form itself.
func (a *app) render(w io.Writer, v any, text func(w io.Writer)) error {
	switch a.config.Output {
	case types.OutputJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case types.OutputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return sysError(fmt.Errorf("marshal YAML: %w", err))
		}
		_, err = w.Write(out)
		return err
	default:
		text(w)
		return nil
	}
}
