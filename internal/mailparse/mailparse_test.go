package mailparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEmailPlain(t *testing.T) {
	raw := "From: alice@example.com\r\n" +
		"To: bob@example.com, carol@example.com\r\n" +
		"Subject: Quarterly review\r\n" +
		"\r\n" +
		"the meeting agenda is attached"

	email, err := ReadEmail(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", email.From)
	assert.Equal(t, []string{"bob@example.com", "carol@example.com"}, email.To)
	assert.Equal(t, "Quarterly review", email.Subject)
	assert.Equal(t, "the meeting agenda is attached", email.Body)
	assert.Contains(t, email.Headers, "Subject")
}

func TestReadEmailMultipart(t *testing.T) {
	raw := "From: scam@evil.example\r\n" +
		"Subject: You won\r\n" +
		"Content-Type: multipart/alternative; boundary=\"BOUNDARY\"\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"click now for your free prize\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>click <b>now</b></p>\r\n" +
		"--BOUNDARY--\r\n"

	email, err := ReadEmail(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "click now for your free prize", email.Body)
	assert.NotContains(t, email.Body, "<p>")
}

func TestReadEmailMultipartNoPlainPart(t *testing.T) {
	raw := "From: scam@evil.example\r\n" +
		"Subject: You won\r\n" +
		"Content-Type: multipart/alternative; boundary=\"BOUNDARY\"\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>html only</p>\r\n" +
		"--BOUNDARY--\r\n"

	email, err := ReadEmail(strings.NewReader(raw))
	require.NoError(t, err)

	// With no text/plain part the remaining body is used as-is.
	assert.NotEmpty(t, email.Body)
}

func TestReadEmailMissingTo(t *testing.T) {
	raw := "From: alice@example.com\r\n" +
		"Subject: hi\r\n" +
		"\r\n" +
		"body"

	email, err := ReadEmail(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, email.To)
}

func TestReadEmailMalformedHeader(t *testing.T) {
	_, err := ReadEmail(strings.NewReader("not an rfc5322 message"))
	assert.Error(t, err)
}

func TestReadEmailBadBoundaryFallsBack(t *testing.T) {
	raw := "From: alice@example.com\r\n" +
		"Subject: hi\r\n" +
		"Content-Type: multipart/mixed\r\n" +
		"\r\n" +
		"raw body without boundary"

	email, err := ReadEmail(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "raw body without boundary", email.Body)
}
