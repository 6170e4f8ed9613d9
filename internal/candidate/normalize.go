package candidate

import "strings"

// NormalizePath lowercases a path and converts backslashes to forward
// slashes. The host platform treats paths as case-insensitive and
// separator-ambivalent, so every cross-provider path comparison goes through
// this form.
func NormalizePath(path string) string {
	return strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
}

// NormalizeName lowercases and trims a display name for comparisons.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ContainsCJK reports whether the text contains CJK ideographs. Pinyin
// matching is only attempted for queries that do not.
func ContainsCJK(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
			return true
		case r >= 0x3400 && r <= 0x4DBF: // Extension A
			return true
		case r >= 0x20000 && r <= 0x2A6DF: // Extension B
			return true
		case r >= 0x2A700 && r <= 0x2B73F: // Extension C
			return true
		case r >= 0x2B740 && r <= 0x2B81F: // Extension D
			return true
		case r >= 0xF900 && r <= 0xFAFF: // Compatibility Ideographs
			return true
		case r >= 0x2F800 && r <= 0x2FA1F: // Compatibility Supplement
			return true
		}
	}
	return false
}

// Stem returns the file name without directory or extension, normalized.
// Used by the shortcut-vs-executable dedup heuristics.
func Stem(path string) string {
	p := NormalizePath(path)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if i := strings.LastIndex(p, "."); i > 0 {
		p = p[:i]
	}
	return strings.TrimSpace(p)
}
