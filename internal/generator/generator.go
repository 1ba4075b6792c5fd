package generator

import (
	"errors"
	"fmt"

	"github.com/saravenpi/inbox/internal/models"
)

// DefaultDescription is the placeholder body given to every generated message.
const DefaultDescription = "Hello world!"

var ErrInvalidCount = errors.New("message count must not be negative")

// Generate returns n unread messages titled "Message 1" through "Message n".
func Generate(n int) ([]models.Message, error) {
	return GenerateWithDescription(n, DefaultDescription)
}

// GenerateWithDescription is Generate with a custom placeholder body.
func GenerateWithDescription(n int, description string) ([]models.Message, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate %d messages: %w", n, ErrInvalidCount)
	}

	messages := make([]models.Message, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, models.Message{
			Subject:     fmt.Sprintf("Message %d", i+1),
			Description: description,
			Read:        false,
		})
	}

	return messages, nil
}
