package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern   = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ParsePolynomial parses a polynomial given as hex (0x11D) or decimal (285)
// and checks that it can define GF(256): degree exactly 8, i.e. bit 0x100
// set and nothing above it. Primitivity is checked later during generation.
func ParsePolynomial(input string) (uint16, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("polynomial cannot be empty")
	}

	var (
		v   uint64
		err error
	)
	if hexPattern.MatchString(s) {
		v, err = strconv.ParseUint(s[2:], 16, 16)
	} else {
		v, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid polynomial %q: %w", input, err)
	}

	poly := uint16(v)
	if poly > 0x1FF {
		return 0, fmt.Errorf("polynomial 0x%X has degree greater than 8", poly)
	}
	if poly&0x100 == 0 {
		return 0, fmt.Errorf("polynomial 0x%X must have the degree-8 bit (0x100) set", poly)
	}

	return poly, nil
}

// ValidateTableName checks that a table name is a legal identifier in every
// supported target language.
func ValidateTableName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}

	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q: must be a letter or underscore followed by letters, digits, or underscores", name)
	}

	return nil
}

// ValidatePackageName checks the package clause used by the go output target.
func ValidatePackageName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if !identPattern.MatchString(name) || name != strings.ToLower(name) {
		return fmt.Errorf("invalid package name %q: must be a lowercase identifier", name)
	}
	return nil
}
