package models

import (
	"fmt"
	"strings"
	"time"
)

type Message struct {
	ID        string        `gorm:"type:varchar(64);primaryKey" db:"id" json:"id"`
	LeadID    string        `gorm:"type:varchar(32);not null;index" db:"lead_id" json:"leadId"`
	Type      Channel       `gorm:"type:varchar(20);not null" db:"type" json:"type"`
	Content   string        `gorm:"type:text;not null" db:"content" json:"content"`
	Timestamp time.Time     `gorm:"type:datetime;not null;index:idx_messages_timestamp,sort:desc" db:"timestamp" json:"timestamp"`
	Status    MessageStatus `gorm:"type:varchar(20);not null" db:"status" json:"status"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "messages"
}

// Channel is the outbound messaging channel
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
)

// ParseChannel accepts a channel name in any letter case.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case ChannelWhatsApp:
		return ChannelWhatsApp, nil
	case ChannelSMS:
		return ChannelSMS, nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// IsValid reports whether c is a known channel
func (c Channel) IsValid() bool {
	return c == ChannelWhatsApp || c == ChannelSMS
}

// Label returns the channel name as shown in dialogs
func (c Channel) Label() string {
	switch c {
	case ChannelWhatsApp:
		return "WhatsApp"
	case ChannelSMS:
		return "SMS"
	default:
		return string(c)
	}
}

// MessageStatus is the delivery status of a message.
// Delivery confirmation does not exist yet, so every message is created as sent.
type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusFailed    MessageStatus = "failed"
)
