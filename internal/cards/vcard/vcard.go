// Package vcard builds vCard 3.0 text for a generated contact card.
package vcard

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrEmptyCard = errors.New("vcard needs a name or phone number")

const (
	crlf        = "\r\n"
	maxLineLen  = 75
	contentType = "text/vcard; charset=utf-8"
)

// ContentType is the MIME type of Build output.
func ContentType() string {
	return contentType
}

// Card holds the fields to emit. Empty fields are left out.
type Card struct {
	Name         string
	Phone        string
	Email        string
	Organization string
	PhotoURL     string
}

// Build returns the vCard text with CRLF line endings and folded long lines.
func Build(c Card) (string, error) {
	name := strings.TrimSpace(c.Name)
	phone := strings.TrimSpace(c.Phone)
	if name == "" && phone == "" {
		return "", ErrEmptyCard
	}

	var b strings.Builder
	write := func(line string) {
		b.WriteString(fold(line))
		b.WriteString(crlf)
	}

	write("BEGIN:VCARD")
	write("VERSION:3.0")
	formatted := name
	if formatted == "" {
		formatted = phone
	}
	write("N:" + structuredName(name))
	write("FN:" + escape(formatted))
	if org := strings.TrimSpace(c.Organization); org != "" {
		write("ORG:" + escape(org))
	}
	if phone != "" {
		write("TEL;TYPE=CELL:" + escape(phone))
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		write("EMAIL;TYPE=INTERNET:" + escape(email))
	}
	if photo := strings.TrimSpace(c.PhotoURL); photo != "" {
		write("PHOTO;VALUE=URI:" + photo)
	}
	write("END:VCARD")
	return b.String(), nil
}

// structuredName splits "Jane Ann Doe" into family "Doe" and given "Jane Ann".
func structuredName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ";;;;"
	case 1:
		return ";" + escape(parts[0]) + ";;;"
	default:
		family := parts[len(parts)-1]
		given := strings.Join(parts[:len(parts)-1], " ")
		return escape(family) + ";" + escape(given) + ";;;"
	}
}

func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		"\r\n", `\n`,
		"\n", `\n`,
		"\r", `\n`,
		",", `\,`,
		";", `\;`,
	)
	return r.Replace(s)
}

// fold splits a content line into 75-octet chunks without breaking a UTF-8
// sequence. Continuation lines start with a single space.
func fold(line string) string {
	if len(line) <= maxLineLen {
		return line
	}
	var b strings.Builder
	limit := maxLineLen
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		// no rune start in reach: the bytes are not valid UTF-8, cut at the limit
		if cut == 0 {
			cut = limit
		}
		b.WriteString(line[:cut])
		b.WriteString(crlf + " ")
		line = line[cut:]
		// the leading space counts towards the next line
		limit = maxLineLen - 1
	}
	b.WriteString(line)
	return b.String()
}
