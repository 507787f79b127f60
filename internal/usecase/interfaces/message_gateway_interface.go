package interfaces

// IMessageGateway turns a finished message into a link the visitor's browser
// opens. The handoff is fire-and-forget: there is no delivery report.
type IMessageGateway interface {
	DeepLink(text string) string
}
