package dto

// ContactRequest is the body of /contato. All fields are mandatory; the
// service reports a single message when any is blank.
type ContactRequest struct {
	Email    string `json:"email"`
	HelpType string `json:"helpType"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}
