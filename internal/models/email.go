package models

type EmailMessage struct {
	To          string
	Subject     string
	Content     string
	HTMLContent string
}
