package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
)

var (
	verificationTmpl = template.Must(template.New("verification").Parse(`
<h1>Verificação de email</h1>
<p>Olá {{.Name}},</p>
<p>{{.Intro}}</p>
<p><a href="{{.Link}}" target="_blank">{{.Link}}</a></p>
<p>Este link permite que você ative sua conta na Let's Go Party.</p>
<p>{{.Ignore}}</p>
<p>Atenciosamente,<br>Equipe Let's Go Party</p>
`))

	resetTmpl = template.Must(template.New("reset").Parse(`
<h1>Recuperação de senha</h1>
<p>Olá {{.Name}},</p>
<p>Recebemos uma solicitação para redefinir sua senha.</p>
<p>Para redefinir sua senha, clique no link abaixo ou copie e cole no seu navegador:</p>
<p><a href="{{.Link}}" target="_blank">{{.Link}}</a></p>
<p>Este link é válido por {{.Validity}}.</p>
<p>Se você não solicitou a redefinição da senha, por favor, ignore este email.</p>
<p>Atenciosamente,<br>Equipe de suporte Let's Go Party</p>
`))

	contactTmpl = template.Must(template.New("contact").Parse(`
<h2>Nova mensagem de contato</h2>
<p><strong>Tipo de ajuda:</strong> {{.HelpType}}</p>
<p><strong>De:</strong> {{.Email}}</p>
<p><strong>Assunto:</strong> {{.Subject}}</p>
<p><strong>Mensagem:</strong></p>
<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
</div>
<p>Este email foi enviado pelo formulário de contato do site Let's Go Party.</p>
`))
)

const (
	verificationSubject = "Verificação de email - Let's Go Party"
	resetSubject        = "Recuperação de senha"
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s mail: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// verificationMail builds the account activation email. resent switches the
// wording used when the user asked for a new link.
func verificationMail(user *domain.User, link string, resent bool) (domain.MailMessage, error) {
	data := struct {
		Name, Link, Intro, Ignore string
	}{
		Name:   user.Name,
		Link:   link,
		Intro:  "Obrigado por se cadastrar! Para completar seu registro, clique no link abaixo ou copie e cole no seu navegador:",
		Ignore: "Se você não se cadastrou em nosso site, por favor, ignore este email.",
	}
	if resent {
		data.Intro = "Você solicitou um novo link de verificação. Para ativar sua conta, clique no link abaixo ou copie e cole no seu navegador:"
		data.Ignore = "Se você não solicitou esta verificação, por favor, ignore este email."
	}

	body, err := render(verificationTmpl, data)
	if err != nil {
		return domain.MailMessage{}, err
	}
	return domain.MailMessage{To: user.Email, Subject: verificationSubject, HTMLBody: body}, nil
}

func resetMail(user *domain.User, link, validity string) (domain.MailMessage, error) {
	body, err := render(resetTmpl, struct {
		Name, Link, Validity string
	}{user.Name, link, validity})
	if err != nil {
		return domain.MailMessage{}, err
	}
	return domain.MailMessage{To: user.Email, Subject: resetSubject, HTMLBody: body}, nil
}

// contactMail relays the contact form to inbox. The sender becomes Reply-To;
// user input is escaped by the template and message newlines become <br>.
func contactMail(inbox string, req dto.ContactRequest) (domain.MailMessage, error) {
	message := strings.ReplaceAll(req.Message, "\r\n", "\n")
	body, err := render(contactTmpl, struct {
		HelpType, Email, Subject string
		Lines                    []string
	}{req.HelpType, req.Email, req.Subject, strings.Split(message, "\n")})
	if err != nil {
		return domain.MailMessage{}, err
	}
	return domain.MailMessage{
		To:       inbox,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("[Contato Let's Go Party] %s - %s", req.HelpType, req.Subject),
		HTMLBody: body,
	}, nil
}
