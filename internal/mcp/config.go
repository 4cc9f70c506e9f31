package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/zenops/zendesk-mcp/internal/config"
	"github.com/zenops/zendesk-mcp/internal/logging"
	"github.com/zenops/zendesk-mcp/internal/mcp/tools"
	"github.com/zenops/zendesk-mcp/internal/zendesk"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig wires every tool to a shared Zendesk client built from the
// environment. Missing credentials are reported once here; the server still
// starts and the affected tools fail per call until the account is configured.
func DefaultConfig() Config {
	base := logging.DefaultLogger(config.LogLevel())
	logger := logging.New(base)

	creds := zendesk.Credentials{
		Subdomain:  config.Subdomain(),
		Email:      config.Email(),
		APIToken:   config.APIToken(),
		OAuthToken: config.OAuthToken(),
	}
	if missing := creds.Missing(); len(missing) > 0 {
		logger.Info("zendesk credentials incomplete, tool calls will fail until they are set", "missing", missing)
	}

	client := zendesk.NewClient(creds, logging.New(base.WithName("zendesk")))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"list_tickets":  &tools.ListHandler{Plural: "tickets", List: client.ListTickets},
			"get_ticket":    &tools.GetHandler{Singular: "ticket", Get: client.GetTicket},
			"create_ticket": &tools.CreateHandler{Singular: "ticket", Param: "ticket_json", Create: client.CreateTicket},
			"update_ticket": &tools.UpdateHandler{Singular: "ticket", Param: "ticket_json", Update: client.UpdateTicket},
			"delete_ticket": &tools.DeleteHandler{Singular: "ticket", Delete: client.DeleteTicket},

			"list_users":  &tools.ListHandler{Plural: "users", List: client.ListUsers},
			"get_user":    &tools.GetHandler{Singular: "user", Get: client.GetUser},
			"create_user": &tools.CreateHandler{Singular: "user", Param: "user_json", Create: client.CreateUser},
			"update_user": &tools.UpdateHandler{Singular: "user", Param: "user_json", Update: client.UpdateUser},
			"delete_user": &tools.DeleteHandler{Singular: "user", Delete: client.DeleteUser},

			"list_organizations":  &tools.ListHandler{Plural: "organizations", List: client.ListOrganizations},
			"get_organization":    &tools.GetHandler{Singular: "organization", Get: client.GetOrganization},
			"create_organization": &tools.CreateHandler{Singular: "organization", Param: "organization_json", Create: client.CreateOrganization},
			"update_organization": &tools.UpdateHandler{Singular: "organization", Param: "organization_json", Update: client.UpdateOrganization},
			"delete_organization": &tools.DeleteHandler{Singular: "organization", Delete: client.DeleteOrganization},

			"list_groups":  &tools.ListHandler{Plural: "groups", List: client.ListGroups},
			"get_group":    &tools.GetHandler{Singular: "group", Get: client.GetGroup},
			"create_group": &tools.CreateHandler{Singular: "group", Param: "group_json", Create: client.CreateGroup},
			"update_group": &tools.UpdateHandler{Singular: "group", Param: "group_json", Update: client.UpdateGroup},
			"delete_group": &tools.DeleteHandler{Singular: "group", Delete: client.DeleteGroup},

			"list_macros":  &tools.ListHandler{Plural: "macros", List: client.ListMacros},
			"get_macro":    &tools.GetHandler{Singular: "macro", Get: client.GetMacro},
			"create_macro": &tools.CreateHandler{Singular: "macro", Param: "macro_json", Create: client.CreateMacro},
			"update_macro": &tools.UpdateHandler{Singular: "macro", Param: "macro_json", Update: client.UpdateMacro},
			"delete_macro": &tools.DeleteHandler{Singular: "macro", Delete: client.DeleteMacro},

			"list_views":  &tools.ListHandler{Plural: "views", List: client.ListViews},
			"get_view":    &tools.GetHandler{Singular: "view", Get: client.GetView},
			"create_view": &tools.CreateHandler{Singular: "view", Param: "view_json", Create: client.CreateView},
			"update_view": &tools.UpdateHandler{Singular: "view", Param: "view_json", Update: client.UpdateView},
			"delete_view": &tools.DeleteHandler{Singular: "view", Delete: client.DeleteView},

			"list_triggers":  &tools.ListHandler{Plural: "triggers", List: client.ListTriggers},
			"get_trigger":    &tools.GetHandler{Singular: "trigger", Get: client.GetTrigger},
			"create_trigger": &tools.CreateHandler{Singular: "trigger", Param: "trigger_json", Create: client.CreateTrigger},
			"update_trigger": &tools.UpdateHandler{Singular: "trigger", Param: "trigger_json", Update: client.UpdateTrigger},
			"delete_trigger": &tools.DeleteHandler{Singular: "trigger", Delete: client.DeleteTrigger},

			"list_automations":  &tools.ListHandler{Plural: "automations", List: client.ListAutomations},
			"get_automation":    &tools.GetHandler{Singular: "automation", Get: client.GetAutomation},
			"create_automation": &tools.CreateHandler{Singular: "automation", Param: "automation_json", Create: client.CreateAutomation},
			"update_automation": &tools.UpdateHandler{Singular: "automation", Param: "automation_json", Update: client.UpdateAutomation},
			"delete_automation": &tools.DeleteHandler{Singular: "automation", Delete: client.DeleteAutomation},

			"list_articles":  &tools.ListHandler{Plural: "articles", List: client.ListArticles},
			"get_article":    &tools.GetHandler{Singular: "article", Get: client.GetArticle},
			"create_article": &tools.CreateHandler{Singular: "article", Param: "article_json", Create: client.CreateArticle},
			"update_article": &tools.UpdateHandler{Singular: "article", Param: "article_json", Update: client.UpdateArticle},
			"delete_article": &tools.DeleteHandler{Singular: "article", Delete: client.DeleteArticle},

			"search":         &tools.SearchHandler{Search: client.Search},
			"get_talk_stats": &tools.StatsHandler{Stats: client.CurrentQueueActivity},
			"list_chats":     &tools.ListHandler{Plural: "chats", List: client.ListChats},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
	}
}
