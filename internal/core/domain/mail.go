package domain

// MailMessage is an outgoing HTML email.
type MailMessage struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}
