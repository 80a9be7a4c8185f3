package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/garagon/yacare/internal/types"
)

// HTMLFormatter renders the markdown report to a standalone HTML page.
type HTMLFormatter struct{}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func (f *HTMLFormatter) FormatDiagnosis(w io.Writer, d *Diagnosis) error {
	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).FormatDiagnosis(&buf, d); err != nil {
		return err
	}
	return renderHTML(w, "Yacare Diagnosis", buf.Bytes())
}

func (f *HTMLFormatter) FormatChecks(w io.Writer, result *types.CheckResult) error {
	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).FormatChecks(&buf, result); err != nil {
		return err
	}
	return renderHTML(w, "Yacare Quality Checks", buf.Bytes())
}

func renderHTML(w io.Writer, title string, markdown []byte) error {
	var body bytes.Buffer
	if err := md.Convert(markdown, &body); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}

	if _, err := fmt.Fprintf(w, pageHeader, title); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, pageFooter)
	return err
}

const pageHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #d1d9e0; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #f6f8fa; }
code { background: #f6f8fa; padding: 0.1rem 0.3rem; border-radius: 4px; }
blockquote { color: #59636e; border-left: 4px solid #d1d9e0; margin: 0; padding-left: 1rem; }
</style>
</head>
<body>
`

const pageFooter = `</body>
</html>
`
