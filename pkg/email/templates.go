package email

import "fmt"

// BuildWelcomeEmail greets a newly registered user.
func BuildWelcomeEmail(toEmail, fullName string) Message {
	if fullName == "" {
		fullName = "there"
	}

	textBody := fmt.Sprintf(`Hi %s,

Welcome to MindChat. Your account is ready.

Log in to browse the psychologist directory and start a conversation.

Thanks,
The MindChat Team`, fullName)

	return Message{
		To:       []string{toEmail},
		Subject:  "Welcome to MindChat",
		TextBody: textBody,
	}
}

// BuildRequestAcceptedEmail tells a patient their session request was accepted.
func BuildRequestAcceptedEmail(toEmail, patientName, psychologistName string) Message {
	if patientName == "" {
		patientName = "there"
	}

	textBody := fmt.Sprintf(`Hi %s,

%s accepted your chat request. Your conversation is now open. Log in to start talking.

Thanks,
The MindChat Team`, patientName, psychologistName)

	return Message{
		To:       []string{toEmail},
		Subject:  "Your chat request was accepted",
		TextBody: textBody,
	}
}
