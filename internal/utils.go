package internal

import (
	"bytes"
	"text/template"
)

func ParsePrompt(promptTemplate string, data any) (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// MaskSecret keeps the first 10 and last 4 characters of a credential so it can be
// identified in logs without being disclosed.
func MaskSecret(secret string) string {
	if len(secret) <= 14 {
		return "***"
	}
	return secret[:10] + "..." + secret[len(secret)-4:]
}
