// Package mailparse extracts classifier input from RFC-5322 messages,
// preferring text/plain parts of multipart bodies.
package mailparse

import (
	"bufio"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/mikey/phishing-classifier/internal/core"
)

// ReadEmail parses a raw message stream into the core email model
func ReadEmail(r io.Reader) (*core.Email, error) {
	msg, err := mail.ReadMessage(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	body, err := ExtractText(msg)
	if err != nil {
		return nil, err
	}

	email := &core.Email{
		From:    msg.Header.Get("From"),
		Subject: msg.Header.Get("Subject"),
		Body:    body,
		Headers: make(map[string][]string, len(msg.Header)),
	}
	if to := msg.Header.Get("To"); to != "" {
		for _, addr := range strings.Split(to, ",") {
			email.To = append(email.To, strings.TrimSpace(addr))
		}
	}
	for k, v := range msg.Header {
		email.Headers[k] = v
	}

	return email, nil
}

// ExtractText extracts the text content from an email message. For multipart
// messages it collects the text/plain parts; anything unparsable falls back
// to the raw body.
func ExtractText(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "multipart/") {
		return readAll(msg.Body)
	}

	raw, err := readAll(msg.Body)
	if err != nil {
		return "", err
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return raw, nil
	}
	boundary, ok := params["boundary"]
	if !ok {
		return raw, nil
	}

	var parts []string
	mr := multipart.NewReader(strings.NewReader(raw), boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Salvage whatever parts we already collected.
			break
		}

		partType := part.Header.Get("Content-Type")
		if partType == "" || strings.Contains(strings.ToLower(partType), "text/plain") {
			content, err := io.ReadAll(part)
			if err == nil {
				parts = append(parts, string(content))
			}
		}
	}

	if len(parts) == 0 {
		return raw, nil
	}
	return strings.Join(parts, "\n"), nil
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
