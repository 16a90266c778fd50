package tools

import (
	"encoding/json"
	"fmt"
)

// parseParams converts the model's already-parsed argument map into the
// tool's typed input struct.
func parseParams[T any](params map[string]interface{}) (T, error) {
	var input T

	raw, err := json.Marshal(params)
	if err != nil {
		return input, fmt.Errorf("failed to marshal params: %w", err)
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, fmt.Errorf("failed to parse params: %w", err)
	}
	return input, nil
}
