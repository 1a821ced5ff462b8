package cpu

import (
	"regexp"
	"strconv"
	"strings"
)

var countRe = regexp.MustCompile(`^[0-9]+$`)

// TotalCount parses the logical processor count printed by `psrinfo | wc -l`.
func TotalCount(text string) (int, error) {
	return parseCount(text, "logical processor count")
}

// RealCount parses the physical processor count printed by `psrinfo -p`.
func RealCount(text string) (int, error) {
	return parseCount(text, "physical processor count")
}

func parseCount(text, what string) (int, error) {
	s := strings.TrimSpace(text)
	if !countRe.MatchString(s) {
		return 0, parseErrorf(0, text, "%s is not a non-negative integer", what)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseErrorf(0, text, "%s out of range", what)
	}
	return n, nil
}
