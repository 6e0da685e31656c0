package mail

import (
	"bytes"
	"html/template"
)

// Field is one labelled value in a notification table.
type Field struct {
	Label string
	Value string
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#1f2937;">
  <h2 style="margin:0 0 16px 0;">{{.Title}}</h2>
  <table cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
    {{range .Fields}}{{if .Value}}<tr>
      <td style="font-weight:600;vertical-align:top;border-bottom:1px solid #e5e7eb;">{{.Label}}</td>
      <td style="white-space:pre-wrap;border-bottom:1px solid #e5e7eb;">{{.Value}}</td>
    </tr>{{end}}{{end}}
  </table>
</body>
</html>`))

// RenderNotification renders an admin notification. Values are escaped.
func RenderNotification(title string, fields []Field) (string, error) {
	var buf bytes.Buffer
	err := notificationTmpl.Execute(&buf, struct {
		Title  string
		Fields []Field
	}{title, fields})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
