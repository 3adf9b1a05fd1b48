package contactform

// Kind classifies a notification; the three kinds map to the three outcomes
// of a submission.
type Kind string

const (
	KindSuccess         Kind = "success"
	KindError           Kind = "error"
	KindConnectionError Kind = "connection-error"
)

const (
	SuccessTitle         = "Message Sent Successfully!"
	ErrorTitle           = "Failed to Send Message"
	ConnectionErrorTitle = "Connection Error"

	DefaultSuccessMessage  = "Thank you for your interest. I'll get back to you within 24 hours."
	GenericErrorMessage    = "Something went wrong while sending your message. Please try again."
	ConnectionErrorMessage = "Unable to reach the server. Please check your internet connection and try again."
)

// Notification is a transient toast reporting a submission outcome.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// IsError reports whether the toast should be styled as a failure.
func (n Notification) IsError() bool {
	return n.Kind == KindError || n.Kind == KindConnectionError
}

func successNotification(message string) Notification {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Notification{Kind: KindSuccess, Title: SuccessTitle, Message: message}
}

func errorNotification(message string) Notification {
	return Notification{Kind: KindError, Title: ErrorTitle, Message: message}
}

func connectionNotification() Notification {
	return Notification{Kind: KindConnectionError, Title: ConnectionErrorTitle, Message: ConnectionErrorMessage}
}
