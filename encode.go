package main

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

const hexPrefix = "0x"

// codeUnits returns the UTF-16 code units of s. Characters outside the Basic
// Multilingual Plane become a surrogate pair, and invalid UTF-8 bytes become
// U+FFFD.
func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// hexTokens renders every code unit of s as unpadded uppercase hex, in input
// order.
func hexTokens(s string) []string {
	units := codeUnits(s)
	tokens := make([]string, 0, len(units))
	for _, u := range units {
		tokens = append(tokens, strings.ToUpper(strconv.FormatUint(uint64(u), 16)))
	}
	return tokens
}

// reverseTokens returns a copy of tokens in reverse order. The characters
// inside each token are left alone.
func reverseTokens(tokens []string) []string {
	reversed := make([]string, len(tokens))
	for i, t := range tokens {
		reversed[len(tokens)-1-i] = t
	}
	return reversed
}

// encodeTokens joins tokens in reverse order behind the "0x" prefix.
func encodeTokens(tokens []string) string {
	return hexPrefix + strings.Join(reverseTokens(tokens), "")
}

func encode(s string) string {
	return encodeTokens(hexTokens(s))
}
