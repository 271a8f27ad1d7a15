package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samvad-hq/wunderlist-go/pkg/wunderlist"
)

// parseArgs turns key=value pairs into operation args. Values that parse as
// JSON (numbers, booleans, objects) keep their type; anything else is a string.
func parseArgs(raw []string) (wunderlist.Args, error) {
	args := make(wunderlist.Args, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q (want key=value)", kv)
		}
		args[key] = parseValue(value)
	}
	return args, nil
}

func parseValue(s string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() || v == nil {
		return s
	}
	return v
}

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid history limit %q", s)
	}
	return n, nil
}
