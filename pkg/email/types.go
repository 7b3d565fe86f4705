package email

// Message is a single outbound email. Either TextBody or HTMLBody
// must be set; when both are present the HTML part is attached as
// the multipart alternative.
type Message struct {
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
