package offergen

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FallbackSurname is used in file names when no requester name is known.
const FallbackSurname = "documento"

// OutputName derives the output file name of one document:
//
//	<template>_<surname>[_<acronym>][_<record>]_<YYYYMMDD>.docx
//
// The surname is the last word of fullName. The record is only added for
// offers rows (record > 0). Equal inputs give equal names, so a later
// document overwrites an earlier one with the same name.
func OutputName(templatePath, fullName, acronym string, record int, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(templatePath), filepath.Ext(templatePath))

	surname := FallbackSurname
	if words := strings.Fields(fullName); len(words) > 0 {
		surname = words[len(words)-1]
	}

	parts := []string{sanitize(base), sanitize(surname)}
	if a := strings.TrimSpace(acronym); a != "" {
		parts = append(parts, sanitize(a))
	}
	if record > 0 {
		parts = append(parts, strconv.Itoa(record))
	}
	parts = append(parts, now.Format("20060102"))
	return strings.Join(parts, "_") + ".docx"
}

// sanitize replaces characters that are not allowed in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
}
