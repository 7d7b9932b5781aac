package jsoncedit

import (
	"fmt"

	"github.com/wI2L/jsondiff"
)

// Diff compares two JSONC documents as values and returns the RFC-6902 patch
// that transforms before into after. Comments and layout are invisible to the
// comparison; the resulting patch round-trips through ApplyJSONPatchBytes
// losslessly on the text level.
func Diff(before, after string) (jsondiff.Patch, error) {
	a, err := Parse(before)
	if err != nil {
		return nil, fmt.Errorf("jsoncedit: diff: before document: %w", err)
	}
	b, err := Parse(after)
	if err != nil {
		return nil, fmt.Errorf("jsoncedit: diff: after document: %w", err)
	}
	patch, err := jsondiff.Compare(a, b)
	if err != nil {
		return nil, fmt.Errorf("jsoncedit: diff: %w", err)
	}
	return patch, nil
}
