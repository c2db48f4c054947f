// Package parsing provides text normalization and job-family classification
// for candidate records and screening criteria.
package parsing

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases the input, folds punctuation to spaces, and
// singularizes each token. Both sides of every keyword comparison go through
// this so "KPIs," and "kpi" compare equal.
func NormalizeText(text string) string {
	return strings.Join(Tokenize(text), " ")
}

// Tokenize splits text into normalized tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := Singularize(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Singularize folds common English plural forms onto their singular form.
// Deliberately conservative: short tokens and -ss/-us/-is endings are left
// alone so "aws", "business" and "analysis" survive intact.
func Singularize(token string) string {
	switch {
	case len(token) > 3 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 3 && strings.HasSuffix(token, "ses"):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is"):
		return token[:len(token)-1]
	default:
		return token
	}
}

// ContainsKeyword reports whether the normalized keyword occurs in the
// normalized text, either as a token run or as a plain substring. Substring
// matching mirrors ATS behavior: "java" in "javascript" counts as a match.
func ContainsKeyword(normalizedText, keyword string) bool {
	normalizedKeyword := NormalizeText(keyword)
	if normalizedKeyword == "" {
		return false
	}
	return strings.Contains(normalizedText, normalizedKeyword)
}

// CandidateText builds the single normalized text span a candidate is
// screened against: all skills followed by the resume body.
func CandidateText(skills []string, resumeText string) string {
	var sb strings.Builder
	for _, s := range skills {
		sb.WriteString(s)
		sb.WriteString(" ")
	}
	sb.WriteString(resumeText)
	return NormalizeText(sb.String())
}
