package app

import (
	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/content"
	"github.com/camionrouge/vitrine/internal/mailer"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ContentProvider provides the shared read-only content source
type ContentProvider interface {
	Content() content.Source
}

// MailerProvider provides the outbound mail transport
type MailerProvider interface {
	Mailer() mailer.Sender
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	ContentProvider
	MailerProvider

	// NextID returns a correlation id for request logging
	NextID() string
}
