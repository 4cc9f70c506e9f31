package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// resource pins the wire contract of one Zendesk collection: the collection
// path, the single-item path format and the key write payloads nest under.
type resource struct {
	collection string
	item       string
	envelope   string
}

var (
	tickets       = resource{"/tickets.json", "/tickets/%d.json", "ticket"}
	users         = resource{"/users.json", "/users/%d.json", "user"}
	organizations = resource{"/organizations.json", "/organizations/%d.json", "organization"}
	groups        = resource{"/groups.json", "/groups/%d.json", "group"}
	macros        = resource{"/macros.json", "/macros/%d.json", "macro"}
	views         = resource{"/views.json", "/views/%d.json", "view"}
	triggers      = resource{"/triggers.json", "/triggers/%d.json", "trigger"}
	automations   = resource{"/automations.json", "/automations/%d.json", "automation"}
	articles      = resource{"/help_center/articles.json", "/help_center/articles/%d.json", "article"}
)

// envelope nests a write payload under the resource's singular key, the shape
// the Zendesk API expects for create and update calls.
func envelope(key string, data any) map[string]any {
	return map[string]any{key: data}
}

func (c *Client) list(ctx context.Context, r resource, p ListParams) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, r.collection, nil, p.Values())
}

func (c *Client) item(ctx context.Context, r resource, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf(r.item, id), nil, nil)
}

func (c *Client) create(ctx context.Context, r resource, data any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, r.collection, envelope(r.envelope, data), nil)
}

func (c *Client) update(ctx context.Context, r resource, id int64, data any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, fmt.Sprintf(r.item, id), envelope(r.envelope, data), nil)
}

func (c *Client) del(ctx context.Context, r resource, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf(r.item, id), nil, nil)
}

// ListTickets lists tickets in the account.
func (c *Client) ListTickets(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, tickets, p)
}

// GetTicket retrieves a single ticket by id.
func (c *Client) GetTicket(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, tickets, id)
}

// CreateTicket creates a ticket from the given payload.
func (c *Client) CreateTicket(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, tickets, data)
}

// UpdateTicket applies the given payload to an existing ticket.
func (c *Client) UpdateTicket(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, tickets, id, data)
}

// DeleteTicket deletes a ticket by id.
func (c *Client) DeleteTicket(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, tickets, id)
}

// ListUsers lists users in the account.
func (c *Client) ListUsers(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, users, p)
}

// GetUser retrieves a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, users, id)
}

// CreateUser creates a user from the given payload.
func (c *Client) CreateUser(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, users, data)
}

// UpdateUser applies the given payload to an existing user.
func (c *Client) UpdateUser(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, users, id, data)
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, users, id)
}

// ListOrganizations lists organizations in the account.
func (c *Client) ListOrganizations(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, organizations, p)
}

// GetOrganization retrieves a single organization by id.
func (c *Client) GetOrganization(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, organizations, id)
}

// CreateOrganization creates an organization from the given payload.
func (c *Client) CreateOrganization(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, organizations, data)
}

// UpdateOrganization applies the given payload to an existing organization.
func (c *Client) UpdateOrganization(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, organizations, id, data)
}

// DeleteOrganization deletes an organization by id.
func (c *Client) DeleteOrganization(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, organizations, id)
}

// ListGroups lists agent groups.
func (c *Client) ListGroups(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, groups, p)
}

// GetGroup retrieves a single group by id.
func (c *Client) GetGroup(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, groups, id)
}

// CreateGroup creates a group from the given payload.
func (c *Client) CreateGroup(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, groups, data)
}

// UpdateGroup applies the given payload to an existing group.
func (c *Client) UpdateGroup(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, groups, id, data)
}

// DeleteGroup deletes a group by id.
func (c *Client) DeleteGroup(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, groups, id)
}

// ListMacros lists macros.
func (c *Client) ListMacros(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, macros, p)
}

// GetMacro retrieves a single macro by id.
func (c *Client) GetMacro(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, macros, id)
}

// CreateMacro creates a macro from the given payload.
func (c *Client) CreateMacro(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, macros, data)
}

// UpdateMacro applies the given payload to an existing macro.
func (c *Client) UpdateMacro(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, macros, id, data)
}

// DeleteMacro deletes a macro by id.
func (c *Client) DeleteMacro(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, macros, id)
}

// ListViews lists views.
func (c *Client) ListViews(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, views, p)
}

// GetView retrieves a single view by id.
func (c *Client) GetView(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, views, id)
}

// CreateView creates a view from the given payload.
func (c *Client) CreateView(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, views, data)
}

// UpdateView applies the given payload to an existing view.
func (c *Client) UpdateView(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, views, id, data)
}

// DeleteView deletes a view by id.
func (c *Client) DeleteView(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, views, id)
}

// ListTriggers lists triggers.
func (c *Client) ListTriggers(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, triggers, p)
}

// GetTrigger retrieves a single trigger by id.
func (c *Client) GetTrigger(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, triggers, id)
}

// CreateTrigger creates a trigger from the given payload.
func (c *Client) CreateTrigger(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, triggers, data)
}

// UpdateTrigger applies the given payload to an existing trigger.
func (c *Client) UpdateTrigger(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, triggers, id, data)
}

// DeleteTrigger deletes a trigger by id.
func (c *Client) DeleteTrigger(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, triggers, id)
}

// ListAutomations lists automations.
func (c *Client) ListAutomations(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, automations, p)
}

// GetAutomation retrieves a single automation by id.
func (c *Client) GetAutomation(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, automations, id)
}

// CreateAutomation creates an automation from the given payload.
func (c *Client) CreateAutomation(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, automations, data)
}

// UpdateAutomation applies the given payload to an existing automation.
func (c *Client) UpdateAutomation(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, automations, id, data)
}

// DeleteAutomation deletes an automation by id.
func (c *Client) DeleteAutomation(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, automations, id)
}

// ListArticles lists Help Center articles.
func (c *Client) ListArticles(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.list(ctx, articles, p)
}

// GetArticle retrieves a single Help Center article by id.
func (c *Client) GetArticle(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.item(ctx, articles, id)
}

// CreateArticle creates a Help Center article from the given payload.
func (c *Client) CreateArticle(ctx context.Context, data any) (json.RawMessage, error) {
	return c.create(ctx, articles, data)
}

// UpdateArticle applies the given payload to an existing article.
func (c *Client) UpdateArticle(ctx context.Context, id int64, data any) (json.RawMessage, error) {
	return c.update(ctx, articles, id, data)
}

// DeleteArticle deletes a Help Center article by id.
func (c *Client) DeleteArticle(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.del(ctx, articles, id)
}

// Search runs a query across the account using the Zendesk search syntax.
func (c *Client) Search(ctx context.Context, p SearchParams) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/search.json", nil, p.Values())
}

// CurrentQueueActivity reports live Talk queue statistics.
func (c *Client) CurrentQueueActivity(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/channels/voice/stats/current_queue_activity.json", nil, nil)
}

// ListChats lists chats. The Chat API exposes listing only, so there is no
// CRUD counterpart here.
func (c *Client) ListChats(ctx context.Context, p ListParams) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/chats.json", nil, p.Values())
}
