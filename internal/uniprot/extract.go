// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdiddy/protein-annotate/pkg/types"
)

// ErrUnexpectedStructure is returned by Extract when a field that is present
// has a JSON type other than the one the UniProtKB schema uses.
var ErrUnexpectedStructure = errors.New("unexpected response structure")

const unexpectedStructureMsg = "Error: Unexpected response structure"

// functionComment is the commentType of free-text function annotations.
const functionComment = "FUNCTION"

// Extract pulls the recommended full name and the first FUNCTION comment
// text out of a UniProtKB entry document. Every level of both paths is
// optional in the schema; absent or null levels yield the fallback values
// types.UnspecifiedName and types.NoActivity. A body that is not JSON
// returns a decode error.
func Extract(doc []byte) (name, activity string, err error) {
	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		return "", "", fmt.Errorf("decoding entry: %w", err)
	}
	entry, ok := root.(map[string]any)
	if !ok {
		return "", "", fmt.Errorf("%w: entry is %s, want object", ErrUnexpectedStructure, jsonKind(root))
	}

	name, err = recommendedName(entry)
	if err != nil {
		return "", "", err
	}
	activity, err = functionText(entry)
	if err != nil {
		return "", "", err
	}
	return name, activity, nil
}

// recommendedName follows proteinDescription.recommendedName.fullName.value.
func recommendedName(entry map[string]any) (string, error) {
	node := entry
	for _, key := range []string{"proteinDescription", "recommendedName", "fullName"} {
		next, found, err := object(node, key)
		if err != nil || !found {
			return types.UnspecifiedName, err
		}
		node = next
	}
	value, found, err := str(node, "value")
	if err != nil || !found {
		return types.UnspecifiedName, err
	}
	return value, nil
}

// functionText returns texts[0].value of the first comment whose
// commentType is FUNCTION. Later FUNCTION comments are ignored.
func functionText(entry map[string]any) (string, error) {
	comments, found, err := array(entry, "comments")
	if err != nil || !found {
		return types.NoActivity, err
	}

	for i, c := range comments {
		comment, ok := c.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: comments[%d] is %s, want object", ErrUnexpectedStructure, i, jsonKind(c))
		}
		kind, _, err := str(comment, "commentType")
		if err != nil {
			return "", err
		}
		if kind != functionComment {
			continue
		}

		texts, found, err := array(comment, "texts")
		if err != nil || !found || len(texts) == 0 {
			return types.NoActivity, err
		}
		first, ok := texts[0].(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: texts[0] is %s, want object", ErrUnexpectedStructure, jsonKind(texts[0]))
		}
		value, found, err := str(first, "value")
		if err != nil || !found {
			return types.NoActivity, err
		}
		return value, nil
	}
	return types.NoActivity, nil
}

// object, array and str look up key in m. A missing or null key reports
// found=false; a value of another type is ErrUnexpectedStructure.

func object(m map[string]any, key string) (map[string]any, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	o, ok := v.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s is %s, want object", ErrUnexpectedStructure, key, jsonKind(v))
	}
	return o, true, nil
}

func array(m map[string]any, key string) ([]any, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s is %s, want array", ErrUnexpectedStructure, key, jsonKind(v))
	}
	return a, true, nil
}

func str(m map[string]any, key string) (string, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s is %s, want string", ErrUnexpectedStructure, key, jsonKind(v))
	}
	return s, true, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
