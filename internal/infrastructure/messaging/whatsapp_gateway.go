package messaging

import (
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultWhatsAppBaseURL = "https://api.whatsapp.com/send"
	DefaultWhatsAppPhone   = "556191362933"
)

var ErrMissingWhatsAppPhone = errors.New("missing WHATSAPP_PHONE")

// WhatsAppGateway builds click-to-chat deep links addressed to a fixed
// recipient. It never talks to WhatsApp itself: opening the link is up to the
// visitor's browser, and nothing reports back whether it worked.
type WhatsAppGateway struct {
	baseURL string
	phone   string
	log     *zap.Logger
}

func NewWhatsAppGateway(baseURL, phone string, log *zap.Logger) (*WhatsAppGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultWhatsAppBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		log.Error("whatsapp gateway not configured", zap.Error(ErrMissingWhatsAppPhone))
		return nil, ErrMissingWhatsAppPhone
	}
	log.Info("whatsapp gateway initialized", zap.String("base_url", baseURL), zap.String("phone", phone))
	return &WhatsAppGateway{baseURL: baseURL, phone: phone, log: log}, nil
}

// DeepLink returns <base>?phone=<recipient>&text=<encoded text>.
func (g *WhatsAppGateway) DeepLink(text string) string {
	link := g.baseURL + "?phone=" + EncodeURIComponent(g.phone) + "&text=" + EncodeURIComponent(text)
	g.log.Debug("deep link built", zap.Int("text_len", len(text)), zap.Int("link_len", len(link)))
	return link
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does:
// letters, digits and -_.!~*'() stay as they are, everything else is
// percent-encoded as UTF-8 and spaces become %20.
func EncodeURIComponent(s string) string {
	// QueryEscape writes a literal '+' as %2B, so every '+' left is a space.
	return componentUnescaper.Replace(url.QueryEscape(s))
}
