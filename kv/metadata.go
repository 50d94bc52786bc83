package kv

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// An input that fails to parse but matches this pattern is almost certainly a
// bare string the user forgot to JSON-quote: optionally quote-wrapped, with no
// structural JSON characters in the interior. Tested against the original
// input, not a stripped copy, since the hint echoes the input back verbatim.
var looksLikeUnquotedString = regexp.MustCompile(`^['"]?[^"'{}\[\]]*['"]?$`)

// ParseMetadata validates an optional user-supplied string as JSON. A nil
// input means no metadata was given and yields nil, nil. The returned
// RawMessage is the compacted JSON text; any valid JSON value is accepted,
// including bare literals. Invalid input that looks like an unquoted string
// produces a hint error; anything else passes the json package's error
// through unmodified.
func ParseMetadata(arg *string) (json.RawMessage, error) {
	if arg == nil {
		return nil, nil
	}

	var v interface{}
	if err := json.Unmarshal([]byte(*arg), &v); err != nil {
		if looksLikeUnquotedString.MatchString(*arg) {
			return nil, errorf(ErrKindMetadataHint,
				`did you remember to double quote strings, like --metadata '"%s"'`, *arg)
		}
		return nil, &Error{
			Kind:    ErrKindMetadataParse,
			Message: err.Error(),
			Cause:   err,
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(*arg)); err != nil {
		return nil, wrapError(ErrKindMetadataParse, err)
	}

	return json.RawMessage(buf.Bytes()), nil
}
