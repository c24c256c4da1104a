package service

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes diacritics: "Đức Nguyễn" -> "Duc Nguyen".
// Đ and đ have no canonical decomposition and are mapped explicitly.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.NewReplacer("Đ", "D", "đ", "d").Replace(result)
}

// lettersOnly lower-cases s and drops everything that is not a letter.
func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// baseUsername builds the first name followed by the initial of every
// last-name word: ("Duy", "Nguyen Huu") -> "duynh". Non-letters are
// dropped, so a name without letters yields "".
func baseUsername(firstName, lastName string) string {
	var b strings.Builder

	for _, part := range strings.Fields(stripMarks(firstName)) {
		b.WriteString(lettersOnly(part))
	}
	for _, part := range strings.Fields(stripMarks(lastName)) {
		if letters := []rune(lettersOnly(part)); len(letters) > 0 {
			b.WriteRune(letters[0])
		}
	}

	return b.String()
}

// nextUsername returns base when it is free, otherwise base followed by one
// more than the highest numeric suffix already taken.
func nextUsername(base string, taken []string) string {
	baseTaken := false
	highest := 0

	for _, name := range taken {
		suffix, ok := strings.CutPrefix(name, base)
		if !ok {
			continue
		}
		if suffix == "" {
			baseTaken = true
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	if !baseTaken {
		return base
	}
	return base + strconv.Itoa(highest+1)
}
