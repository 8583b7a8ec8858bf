package email

import "fmt"

// Plain HTML bodies for swap lifecycle notifications.

func SwapRequestReceivedSubject() string {
	return "You have a new swap request"
}

func SwapRequestReceivedBody(fromName, skillOffered, skillWanted string) string {
	return fmt.Sprintf(
		"<p>%s wants to swap skills with you.</p>"+
			"<p>They offer <b>%s</b> and would like to learn <b>%s</b> from you.</p>"+
			"<p>Open your dashboard to accept or reject the request.</p>",
		fromName, skillOffered, skillWanted,
	)
}

func SwapRequestAcceptedSubject() string {
	return "Your swap request was accepted"
}

func SwapRequestAcceptedBody(toName, skillWanted string) string {
	return fmt.Sprintf(
		"<p>%s accepted your swap request.</p>"+
			"<p>You can now arrange your <b>%s</b> sessions together.</p>",
		toName, skillWanted,
	)
}
