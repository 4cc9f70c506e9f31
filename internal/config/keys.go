package config

const (
	KeySubdomain  = "zendesk_subdomain"
	KeyEmail      = "zendesk_email"
	KeyAPIToken   = "zendesk_api_token"
	KeyOAuthToken = "zendesk_oauth_token"
	KeyLogLevel   = "log_level"
	KeyTransport  = "mcp_transport"
	KeyHost       = "http_host"
	KeyPort       = "http_port"
)
