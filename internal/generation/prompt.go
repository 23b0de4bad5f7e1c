package generation

import (
	"fmt"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// MessagePrompt builds the instruction sent for a message draft
func MessagePrompt(channel models.Channel, leadName, propertyName, draftContext string) string {
	if draftContext == "" {
		draftContext = DefaultContext
	}
	return fmt.Sprintf(
		"Draft a %s message for a client named %s about the property \"%s\". The context is: %s. Keep it under %s. Use emojis if appropriate for WhatsApp.",
		channel, leadName, propertyName, draftContext, lengthLimit(channel),
	)
}

func lengthLimit(channel models.Channel) string {
	if channel == models.ChannelSMS {
		return "160 characters"
	}
	return "a few friendly sentences"
}

// DescriptionPrompt builds the instruction sent for listing copy
func DescriptionPrompt(details string) string {
	return fmt.Sprintf("Write a compelling real estate marketing description for this property: %s. Keep it professional and inviting.", details)
}

// MessageFallback is the draft used when the service cannot be reached
func MessageFallback(leadName, propertyName string) string {
	return fmt.Sprintf("Hi %s, I'm reaching out about %s. Are you still interested?", leadName, propertyName)
}
