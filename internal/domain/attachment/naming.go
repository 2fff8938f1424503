package attachment

import (
	"encoding/json"
	"path"
	"strings"
)

// SanitizeBase replaces every rune outside [A-Za-z0-9_-] with "_".
func SanitizeBase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// SplitName splits a client file name into a base and a lower-cased
// extension without the dot. Directory parts are discarded.
func SplitName(original string) (base, ext string) {
	name := BaseName(original)
	ext = path.Ext(name)
	base = strings.TrimSuffix(name, ext)
	return base, strings.ToLower(strings.TrimPrefix(ext, "."))
}

// BaseName strips any directory part, accepting both separators. It returns
// "" for names that cannot address a file.
func BaseName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	base := path.Base(name)
	switch base {
	case ".", "..", "/":
		return ""
	}
	return base
}

// ParseNames reads a list of file names sent by a client: a JSON array, an
// array value or a comma-separated string. Names are reduced to their base
// name and blanks are dropped.
func ParseNames(raw any) []string {
	var names []string
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		names = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "[") {
			if err := json.Unmarshal([]byte(s), &names); err != nil {
				return nil
			}
		} else {
			names = strings.Split(s, ",")
		}
	default:
		return nil
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if b := BaseName(n); b != "" {
			out = append(out, b)
		}
	}
	return out
}
