package email

// Message is a fully rendered email ready to hand to the SMTP dialer.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
