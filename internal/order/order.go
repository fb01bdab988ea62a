package order

import "errors"

// ErrMissingRequiredField is returned when the customer name, address or
// phone is empty. No partial message is produced.
var ErrMissingRequiredField = errors.New("missing required customer field")

// Customer holds the contact details supplied at checkout. Remarks is
// optional free text.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Remarks string `json:"remarks,omitempty"`
}

func (c Customer) validate() error {
	if c.Name == "" || c.Address == "" || c.Phone == "" {
		return ErrMissingRequiredField
	}
	return nil
}

// Message is a formatted order intent: the text itself and the WhatsApp deep
// link that opens a chat with it pre-filled. Intents are ephemeral; nothing
// here is persisted.
type Message struct {
	Text        string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}
