package infrastructure

import (
	"encoding/json"
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain/model"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyOrderPatch applies an RFC 6902 patch to the wire form of an order.
// The patched document goes through the same decoding as a fresh request,
// so defaults and label checks apply to the result.
func ApplyOrderPatch(original model.Order, patchData []byte) (model.Order, error) {
	originalJSON, err := json.Marshal(original)
	if err != nil {
		return original, fmt.Errorf("failed to encode order: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return original, fmt.Errorf("failed to decode patch: %w", err)
	}

	modifiedJSON, err := patch.Apply(originalJSON)
	if err != nil {
		return original, fmt.Errorf("failed to apply patch: %w", err)
	}

	var updated model.Order
	if err := json.Unmarshal(modifiedJSON, &updated); err != nil {
		return original, err
	}
	return updated, nil
}
