package api

import "fmt"

// twimlMessage wraps one outgoing text in the XML envelope Twilio expects.
// Dynamic names inside the text are already XML-escaped by the menu
// resolver; the fixed menu texts contain no markup-significant characters.
func twimlMessage(text string) string {
	return fmt.Sprintf("<Response>\n  <Message>%s</Message>\n</Response>", text)
}
