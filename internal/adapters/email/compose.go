package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"ironcore/internal/domain/message"
	"ironcore/internal/domain/signup"
	"ironcore/internal/domain/trial"
	"ironcore/internal/domain/user"
)

// Categories tag outgoing mail by purpose.
const (
	CategoryTrialConfirmation = "trial_confirmation"
	CategoryTrialNotification = "trial_notification"
	CategoryContactNotify     = "contact_notification"
	CategoryWelcome           = "welcome"
)

var bodies = template.Must(template.New("email").Funcs(template.FuncMap{"join": strings.Join}).Parse(`
{{define "trial_confirmation"}}<p>Hi {{.Request.Name}},</p>
<p>Your 7-day free trial at {{.Club}} is booked. Goal: <strong>{{.Request.GoalTitle}}</strong>,
{{.Request.Experience}} level, {{.Request.TrainingTime}} sessions.</p>
<p>A coach will call you on {{.Request.Phone}} within 24 hours to schedule your first session.</p>
<p>No credit card required. See you on the floor.</p>{{end}}
{{define "trial_notification"}}<p>New free trial request.</p>
<ul>
<li>Name: {{.Request.Name}}</li>
<li>Phone: {{.Request.Phone}}</li>
<li>Email: {{if .Request.Email}}{{.Request.Email}}{{else}}(not given){{end}}</li>
<li>Goal: {{.Request.GoalTitle}}</li>
<li>Experience: {{.Request.Experience}}</li>
<li>Preferred time: {{.Request.TrainingTime}}</li>
</ul>{{end}}
{{define "contact_notification"}}<p>New message from {{.Message.Name}} &lt;{{.Message.Email}}&gt;</p>
<p><strong>{{.Message.Subject}}</strong></p>
<p>{{.Message.Body}}</p>{{end}}
{{define "welcome"}}<p>Hi {{.User.Name}},</p>
<p>Your {{.Club}} account is created and your 7-day free trial starts today. No card needed.</p>
<p>Goals: <strong>{{join .Goals ", "}}</strong>. Level: {{.Level}}.</p>
<p>Bring water and a towel. Time to get to work.</p>{{end}}
`))

// Addresses configures who mail is sent to and on behalf of.
type Addresses struct {
	Club    string // display name, e.g. "IRONCORE"
	Notify  string // club inbox for notifications; empty disables them
	ReplyTo string // reply-to on member-facing mail
}

// TrialEmails builds the mail for a new trial request: a confirmation to the
// requester when they gave an email, and a notification to the club inbox.
// PRE: r has been validated
// POST: Returns 0 to 2 requests
func TrialEmails(r trial.Request, addr Addresses) ([]SendRequest, error) {
	data := struct {
		Club    string
		Request trial.Request
	}{addr.Club, r}

	var out []SendRequest
	if r.Email != "" {
		html, err := render("trial_confirmation", data)
		if err != nil {
			return nil, err
		}
		out = append(out, SendRequest{
			To:       []string{r.Email},
			Subject:  fmt.Sprintf("Your %s free trial is booked", addr.Club),
			HTML:     html,
			ReplyTo:  addr.ReplyTo,
			Category: CategoryTrialConfirmation,
		})
	}
	if addr.Notify != "" {
		html, err := render("trial_notification", data)
		if err != nil {
			return nil, err
		}
		out = append(out, SendRequest{
			To:       []string{addr.Notify},
			Subject:  fmt.Sprintf("Trial request: %s (%s)", r.Name, r.GoalTitle()),
			HTML:     html,
			ReplyTo:  r.Email,
			Category: CategoryTrialNotification,
		})
	}
	return out, nil
}

// ContactEmail builds the club notification for a contact message.
// PRE: m has been validated
// POST: ok is false when no notification inbox is configured
func ContactEmail(m message.Message, addr Addresses) (req SendRequest, ok bool, err error) {
	if addr.Notify == "" {
		return SendRequest{}, false, nil
	}
	html, err := render("contact_notification", struct{ Message message.Message }{m})
	if err != nil {
		return SendRequest{}, false, err
	}
	return SendRequest{
		To:       []string{addr.Notify},
		Subject:  "Contact: " + m.Subject,
		HTML:     html,
		ReplyTo:  m.Email,
		Category: CategoryContactNotify,
	}, true, nil
}

// WelcomeEmail builds the member-facing welcome for a new sign-up.
// PRE: u was created from reg
func WelcomeEmail(u user.User, reg signup.Registration, addr Addresses) (SendRequest, error) {
	data := struct {
		Club  string
		User  user.User
		Goals []string
		Level string
	}{addr.Club, u, reg.GoalLabels(), reg.LevelLabel()}
	html, err := render("welcome", data)
	if err != nil {
		return SendRequest{}, err
	}
	return SendRequest{
		To:       []string{u.Email},
		Subject:  fmt.Sprintf("Welcome to %s", addr.Club),
		HTML:     html,
		ReplyTo:  addr.ReplyTo,
		Category: CategoryWelcome,
	}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := bodies.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
