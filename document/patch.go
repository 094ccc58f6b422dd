package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 JSON merge patch to a document and
// returns the patched document. The document round-trips through its
// canonical JSON form; the patch is plain JSON text.
//
// The result is normalized but not validated; run schema.Validate on it
// before converting.
func MergePatch(doc *Document, patch []byte) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("merge patch: nil document")
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("merge patch: encoding document: %w", err)
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	res := &Document{}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(res); err != nil {
		return nil, fmt.Errorf("merge patch: decoding result: %w", err)
	}
	return Normalize(res), nil
}
