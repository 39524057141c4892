package invnum

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Delimiter separates multiple inventory numbers stored in a single field.
const Delimiter = "|"

// Pattern matches FTVA inventory numbers embedded in arbitrary strings,
// e.g. legacy file paths. An inventory number is one of the approved
// prefixes followed by two or more digits and an optional single
// capital-letter suffix. The lookahead/lookbehind-free construction below
// relies on FindAllStringSubmatchIndex plus manual boundary checks in
// Extract, since Go's regexp has no lookaround.
var pattern = regexp.MustCompile(`(?:M|T|DVD|FE|HFA|VA|XFE|XFF|XVE)\d{2,}[A-Z]?`)

// variantPrefixes are the inventory number prefixes for which Alma call
// number suffix variants are plausible. Values with other prefixes never
// get suffixed variants.
var variantPrefixes = []string{"DVD", "HFA", "VA", "VD", "XFE", "XFF", "XVE", "ZVB"}

// callNumberSuffixes are the suffixes Alma sometimes appends to a call
// number, already in normalized (space-free) form.
var callNumberSuffixes = []string{"M", "R", "T"}

// Normalize converts a raw identifier value to canonical form: NFKC
// normalization (which folds non-breaking spaces, common in FileMaker
// exports, to regular spaces), removal of all spaces (common in Alma call
// numbers), and upper-casing. A value that is empty or all whitespace
// normalizes to the empty string.
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)
	return strings.ToUpper(s)
}

// Split breaks a possibly compound raw field into normalized atomic
// identifiers. Segments that normalize to the empty string are dropped, so
// inputs like "" or " | " yield a nil slice. Splitting the pipe-joined
// result of a previous Split yields the same identifiers.
func Split(raw string) []string {
	var ids []string
	for _, segment := range strings.Split(raw, Delimiter) {
		if id := Normalize(segment); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Join combines atomic identifiers back into the compound field form.
func Join(ids []string) string {
	return strings.Join(ids, Delimiter)
}

// IsCompound reports whether a raw field contains more than one identifier.
func IsCompound(raw string) bool {
	return len(Split(raw)) > 1
}

// Extract finds all inventory numbers embedded in a value, such as a legacy
// file path, returning unique matches in order of first appearance.
//
// Candidate matches are rejected when preceded by a capital letter (to avoid
// false positives like the T3000 inside "HARVEST3000") or when the optional
// suffix letter is followed by another letter (so "XFE1915MX" yields
// "XFE1915", not "XFE1915M"). Syntactically valid look-alikes that are not
// real inventory numbers can still slip through; that is inherent to
// pattern-based extraction over free-text paths.
func Extract(value string) []string {
	var found []string
	seen := make(map[string]struct{})

	for _, loc := range pattern.FindAllStringIndex(value, -1) {
		start, end := loc[0], loc[1]

		// A capital letter immediately before the match means the "prefix"
		// is really the tail of a longer word.
		if start > 0 && isCapital(value[start-1]) {
			continue
		}

		match := value[start:end]

		// If the match ends in a suffix letter, the next character must not
		// be a letter; otherwise the suffix belongs to a following word and
		// the match is kept without it (when still valid) or dropped.
		if isCapital(match[len(match)-1]) && end < len(value) && isLetter(value[end]) {
			trimmed := match[:len(match)-1]
			if !pattern.MatchString(trimmed) || pattern.FindString(trimmed) != trimmed {
				continue
			}
			match = trimmed
		}

		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		found = append(found, match)
	}
	return found
}

// ExtractJoined returns the pipe-joined form of Extract, suitable for
// writing back into a spreadsheet cell. No matches yields the empty string.
func ExtractJoined(value string) string {
	return Join(Extract(value))
}

// Matches reports whether a normalized identifier is, in its entirety, a
// syntactically valid inventory number.
func Matches(id string) bool {
	return pattern.FindString(id) == id
}

// Variants returns the identifier itself plus Alma call-number suffix
// variants ("M", "R", "T" in normalized form), generated only when the value
// starts with an approved prefix. Used to index Alma records so that
// "DVD431" also matches a holdings call number recorded as "DVD431 M".
func Variants(id string) []string {
	variants := []string{id}
	for _, prefix := range variantPrefixes {
		if strings.HasPrefix(id, prefix) {
			for _, suffix := range callNumberSuffixes {
				variants = append(variants, id+suffix)
			}
			break
		}
	}
	return variants
}

func isCapital(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLetter(b byte) bool {
	return isCapital(b) || (b >= 'a' && b <= 'z')
}
