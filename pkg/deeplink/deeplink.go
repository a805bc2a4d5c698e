// Package deeplink builds prefilled messaging links of the form
// https://<host>/<digits>?text=<encoded message>.
package deeplink

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ContactGreeting is the prefilled text of the floating contact button.
const ContactGreeting = "Hola, quiero información sobre sus servicios médicos."

var (
	ErrEmptyTarget = errors.New("deeplink: target has no digits")
	ErrEmptyHost   = errors.New("deeplink: messaging host is empty")
)

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Build returns the deep link for an already percent-encoded message.
func Build(host, contact, encodedText string) (string, error) {
	host = strings.TrimFunc(host, func(r rune) bool { return r == '/' || unicode.IsSpace(r) })
	host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	if host == "" {
		return "", ErrEmptyHost
	}
	target := DigitsOnly(contact)
	if target == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyTarget, contact)
	}
	return "https://" + host + "/" + target + "?text=" + encodedText, nil
}

// ContactLink builds the general-enquiry link used by the floating button.
func ContactLink(host, contact string) (string, error) {
	return Build(host, contact, EncodeURIComponent(ContactGreeting))
}
