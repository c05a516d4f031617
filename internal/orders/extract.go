package orders

import "regexp"

// mentionPattern finds "order ORD-12345", "order number #12345", "ord12345"
// and similar references inside a chat message.
var mentionPattern = regexp.MustCompile(`(?i)(?:order|ord)\s*(?:number)?\s*#?\s*([a-z0-9]{3,}-?[a-z0-9]+)`)

// ExtractReference returns the first order reference token in message, as
// the customer typed it. The token still has to go through Normalize.
func ExtractReference(message string) (string, bool) {
	m := mentionPattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[1], true
}
