package handler

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed static/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Subject string
}

func renderIndex(subject string) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{Subject: subject}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
