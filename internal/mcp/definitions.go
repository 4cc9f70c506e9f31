package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// toolDefinitions declares the schema for every tool the server exposes,
// keyed by tool name. Adapters are registered against these in New.
func toolDefinitions() map[string]mcp.Tool {
	all := []mcp.Tool{
		mcp.NewTool("list_tickets",
			mcp.WithDescription("List tickets in the Zendesk account. Results are paginated."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'created_at', 'status')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_ticket",
			mcp.WithDescription("Retrieve a single ticket by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Ticket ID"),
			),
		),
		mcp.NewTool("create_ticket",
			mcp.WithDescription("Create a new ticket. The payload must contain at least a comment; common fields are subject, comment, priority and requester_id."),
			mcp.WithString("ticket_json",
				mcp.Required(),
				mcp.Description("Ticket fields as a JSON object, e.g. '{\"subject\":\"Printer on fire\",\"comment\":{\"body\":\"Help!\"}}'"),
			),
		),
		mcp.NewTool("update_ticket",
			mcp.WithDescription("Update an existing ticket. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Ticket ID"),
			),
			mcp.WithString("ticket_json",
				mcp.Required(),
				mcp.Description("Ticket fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_ticket",
			mcp.WithDescription("Delete a ticket by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Ticket ID"),
			),
		),

		mcp.NewTool("list_users",
			mcp.WithDescription("List users in the Zendesk account. Results are paginated."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'created_at')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_user",
			mcp.WithDescription("Retrieve a single user by their ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("User ID"),
			),
		),
		mcp.NewTool("create_user",
			mcp.WithDescription("Create a new user. The payload must contain a name; common fields are email, role and organization_id."),
			mcp.WithString("user_json",
				mcp.Required(),
				mcp.Description("User fields as a JSON object, e.g. '{\"name\":\"Jane Doe\",\"email\":\"jane@example.com\"}'"),
			),
		),
		mcp.NewTool("update_user",
			mcp.WithDescription("Update an existing user. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("User ID"),
			),
			mcp.WithString("user_json",
				mcp.Required(),
				mcp.Description("User fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_user",
			mcp.WithDescription("Delete a user by their ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("User ID"),
			),
		),

		mcp.NewTool("list_organizations",
			mcp.WithDescription("List organizations in the Zendesk account. Results are paginated."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'name')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_organization",
			mcp.WithDescription("Retrieve a single organization by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Organization ID"),
			),
		),
		mcp.NewTool("create_organization",
			mcp.WithDescription("Create a new organization. The payload must contain a name; common fields are domain_names, details and notes."),
			mcp.WithString("organization_json",
				mcp.Required(),
				mcp.Description("Organization fields as a JSON object"),
			),
		),
		mcp.NewTool("update_organization",
			mcp.WithDescription("Update an existing organization. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Organization ID"),
			),
			mcp.WithString("organization_json",
				mcp.Required(),
				mcp.Description("Organization fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_organization",
			mcp.WithDescription("Delete an organization by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Organization ID"),
			),
		),

		mcp.NewTool("list_groups",
			mcp.WithDescription("List agent groups in the Zendesk account."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'name')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_group",
			mcp.WithDescription("Retrieve a single group by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Group ID"),
			),
		),
		mcp.NewTool("create_group",
			mcp.WithDescription("Create a new agent group. The payload must contain a name."),
			mcp.WithString("group_json",
				mcp.Required(),
				mcp.Description("Group fields as a JSON object, e.g. '{\"name\":\"Support\"}'"),
			),
		),
		mcp.NewTool("update_group",
			mcp.WithDescription("Update an existing group. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Group ID"),
			),
			mcp.WithString("group_json",
				mcp.Required(),
				mcp.Description("Group fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_group",
			mcp.WithDescription("Delete a group by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Group ID"),
			),
		),

		mcp.NewTool("list_macros",
			mcp.WithDescription("List macros in the Zendesk account."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'usage_7d', 'alphabetical')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_macro",
			mcp.WithDescription("Retrieve a single macro by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Macro ID"),
			),
		),
		mcp.NewTool("create_macro",
			mcp.WithDescription("Create a new macro. The payload must contain a title and a list of actions."),
			mcp.WithString("macro_json",
				mcp.Required(),
				mcp.Description("Macro fields as a JSON object"),
			),
		),
		mcp.NewTool("update_macro",
			mcp.WithDescription("Update an existing macro. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Macro ID"),
			),
			mcp.WithString("macro_json",
				mcp.Required(),
				mcp.Description("Macro fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_macro",
			mcp.WithDescription("Delete a macro by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Macro ID"),
			),
		),

		mcp.NewTool("list_views",
			mcp.WithDescription("List views in the Zendesk account."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'alphabetical', 'created_at')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_view",
			mcp.WithDescription("Retrieve a single view by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("View ID"),
			),
		),
		mcp.NewTool("create_view",
			mcp.WithDescription("Create a new view. The payload must contain a title and filter conditions."),
			mcp.WithString("view_json",
				mcp.Required(),
				mcp.Description("View fields as a JSON object"),
			),
		),
		mcp.NewTool("update_view",
			mcp.WithDescription("Update an existing view. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("View ID"),
			),
			mcp.WithString("view_json",
				mcp.Required(),
				mcp.Description("View fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_view",
			mcp.WithDescription("Delete a view by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("View ID"),
			),
		),

		mcp.NewTool("list_triggers",
			mcp.WithDescription("List triggers in the Zendesk account."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'position', 'alphabetical')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_trigger",
			mcp.WithDescription("Retrieve a single trigger by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Trigger ID"),
			),
		),
		mcp.NewTool("create_trigger",
			mcp.WithDescription("Create a new trigger. The payload must contain a title, conditions and actions."),
			mcp.WithString("trigger_json",
				mcp.Required(),
				mcp.Description("Trigger fields as a JSON object"),
			),
		),
		mcp.NewTool("update_trigger",
			mcp.WithDescription("Update an existing trigger. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Trigger ID"),
			),
			mcp.WithString("trigger_json",
				mcp.Required(),
				mcp.Description("Trigger fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_trigger",
			mcp.WithDescription("Delete a trigger by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Trigger ID"),
			),
		),

		mcp.NewTool("list_automations",
			mcp.WithDescription("List automations in the Zendesk account."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'position', 'alphabetical')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_automation",
			mcp.WithDescription("Retrieve a single automation by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Automation ID"),
			),
		),
		mcp.NewTool("create_automation",
			mcp.WithDescription("Create a new automation. The payload must contain a title, conditions and actions."),
			mcp.WithString("automation_json",
				mcp.Required(),
				mcp.Description("Automation fields as a JSON object"),
			),
		),
		mcp.NewTool("update_automation",
			mcp.WithDescription("Update an existing automation. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Automation ID"),
			),
			mcp.WithString("automation_json",
				mcp.Required(),
				mcp.Description("Automation fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_automation",
			mcp.WithDescription("Delete an automation by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Automation ID"),
			),
		),

		mcp.NewTool("list_articles",
			mcp.WithDescription("List Help Center articles."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page (Zendesk caps this at 100)"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'created_at', 'title')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_article",
			mcp.WithDescription("Retrieve a single Help Center article by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Article ID"),
			),
		),
		mcp.NewTool("create_article",
			mcp.WithDescription("Create a new Help Center article. The payload must contain a title and body."),
			mcp.WithString("article_json",
				mcp.Required(),
				mcp.Description("Article fields as a JSON object"),
			),
		),
		mcp.NewTool("update_article",
			mcp.WithDescription("Update an existing Help Center article. Only the fields present in the payload are changed."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Article ID"),
			),
			mcp.WithString("article_json",
				mcp.Required(),
				mcp.Description("Article fields to change, as a JSON object"),
			),
		),
		mcp.NewTool("delete_article",
			mcp.WithDescription("Delete a Help Center article by its ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Article ID"),
			),
		),

		mcp.NewTool("search",
			mcp.WithDescription("Search across the Zendesk account using the Zendesk query syntax (e.g. 'type:ticket status:open')."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query in the Zendesk search syntax"),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by (e.g. 'updated_at')"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort direction"),
				mcp.Enum("asc", "desc"),
			),
		),
		mcp.NewTool("get_talk_stats",
			mcp.WithDescription("Retrieve current queue activity statistics from Zendesk Talk."),
		),
		mcp.NewTool("list_chats",
			mcp.WithDescription("List chats from the Zendesk Chat API. Results are paginated."),
			mcp.WithNumber("page",
				mcp.Description("Page number to fetch (1-based)"),
			),
			mcp.WithNumber("per_page",
				mcp.Description("Results per page"),
			),
		),
	}

	defs := make(map[string]mcp.Tool, len(all))
	for _, tool := range all {
		defs[tool.Name] = tool
	}
	return defs
}
