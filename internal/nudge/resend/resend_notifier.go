package resend

import (
	"bytes"
	"html/template"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	From   string
	Email  string
}

const htmlTemplate = `
<p>These habits are still waiting on a check-in today:</p>
<ul>
{{range .Habits}}
  <li>{{.}}</li>
{{end}}
</ul>
`

func (r *ResendNotifier) SendReminder(habits []string) error {
	tmpl, err := template.New("email").Parse(htmlTemplate)
	if err != nil {
		return err
	}

	data := struct {
		Habits []string
	}{
		Habits: habits,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: "Habits due today",
		Html:    buf.String(),
	}

	_, err = client.Emails.Send(params)
	return err
}
