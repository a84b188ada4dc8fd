package genjson

import (
	"encoding/json"
	"strings"

	"github.com/Invicton-Labs/go-stackerr"
)

func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, nil
}

// UnmarshalString decodes a JSON document held in a string, such as an
// environment variable. Surrounding whitespace is ignored.
func UnmarshalString[T any](data string) (v T, err stackerr.Error) {
	return Unmarshal[T]([]byte(strings.TrimSpace(data)))
}
