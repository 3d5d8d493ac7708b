// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package generate turns a loaded service definition into Go source files:
// enums, value objects, inputs with validation and body serialization,
// results with pagination helpers, exception types, and a thin client.
package generate

import (
	"strings"
	"unicode"
)

// initialisms are uppercased wholesale when they appear as a word of an
// identifier, matching the convention of hand-written Go AWS code.
var initialisms = map[string]string{
	"acl":   "ACL",
	"api":   "API",
	"arn":   "ARN",
	"aws":   "AWS",
	"cors":  "CORS",
	"db":    "DB",
	"dns":   "DNS",
	"http":  "HTTP",
	"https": "HTTPS",
	"id":    "ID",
	"ids":   "IDs",
	"json":  "JSON",
	"kms":   "KMS",
	"md5":   "MD5",
	"mfa":   "MFA",
	"sdk":   "SDK",
	"sns":   "SNS",
	"sqs":   "SQS",
	"sse":   "SSE",
	"ttl":   "TTL",
	"uri":   "URI",
	"url":   "URL",
	"uuid":  "UUID",
	"xml":   "XML",
}

// GoName converts a shape or member name into an exported Go identifier.
// AWS model names are already camelish; this exports the first rune, drops
// characters Go cannot carry, and normalizes initialism words.
func GoName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(exportWord(w))
	}
	out := b.String()
	if out != "" && unicode.IsDigit(rune(out[0])) {
		out = "V" + out
	}
	return out
}

// EnumValueName builds the constant name for one enum value, prefixed with
// the enum type: ("ReturnValue", "ALL_OLD") -> "ReturnValueAllOld".
func EnumValueName(typeName, value string) string {
	return GoName(typeName) + GoName(value)
}

func exportWord(w string) string {
	if fix, ok := initialisms[strings.ToLower(w)]; ok {
		return fix
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	// Words arriving fully uppercase (SCREAMING enum segments) are titled,
	// not preserved: ALL_OLD becomes AllOld.
	if len(r) > 1 && strings.ToUpper(w) == w {
		for i := 1; i < len(r); i++ {
			r[i] = unicode.ToLower(r[i])
		}
	}
	return string(r)
}

// splitWords cuts an identifier on separators and lower-to-upper case
// transitions, dropping anything that is not a letter or digit.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case i > 0 && unicode.IsUpper(r) &&
			(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
