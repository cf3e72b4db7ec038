// Package hypermedia assembles self-describing JSON responses: resource
// representations wrapped with "@controls" affordances (links, edit/delete
// forms with embedded schemas, filter templates).
package hypermedia

import (
	"fmt"
	"strings"
)

// ControlsKey is the reserved envelope key holding the control map.
const ControlsKey = "@controls"

// Control names used across the API.
const (
	ControlSelf   = "self"
	ControlEdit   = "edit"
	ControlDelete = "delete"
	ControlCreate = "create"
	ControlFilter = "filter by field"
)

// Control is a named affordance: where a follow-up action lives, the HTTP
// method to use, and optionally the schema of the payload it expects.
type Control struct {
	Href           string                 `json:"href"`
	Method         string                 `json:"method,omitempty"`
	Schema         map[string]interface{} `json:"schema,omitempty"`
	Fields         []string               `json:"fields,omitempty"`
	IsHrefTemplate bool                   `json:"isHrefTemplate,omitempty"`
}

// Envelope is a JSON-serializable resource wrapper. Representations are
// copied in; building an envelope never mutates its input.
type Envelope map[string]interface{}

// NewItem wraps a single representation with a self control.
func NewItem(rep map[string]interface{}, selfHref string) Envelope {
	env := make(Envelope, len(rep)+1)
	for k, v := range rep {
		env[k] = v
	}
	env[ControlsKey] = map[string]Control{
		ControlSelf: {Href: selfHref},
	}
	return env
}

// AddControl attaches a named control to the envelope.
func (e Envelope) AddControl(name string, ctrl Control) Envelope {
	controls, ok := e[ControlsKey].(map[string]Control)
	if !ok {
		controls = make(map[string]Control)
		e[ControlsKey] = controls
	}
	controls[name] = ctrl
	return e
}

// Writable adds edit and delete controls for an owner-writable instance.
func (e Envelope) Writable(href string, schema map[string]interface{}) Envelope {
	e.AddControl(ControlEdit, Control{Href: href, Method: "PUT", Schema: schema})
	e.AddControl(ControlDelete, Control{Href: href, Method: "DELETE"})
	return e
}

// NewCollection wraps an ordered list of representations. Item order is
// preserved; each item carries its own self control derived from its id.
// An empty input yields "items": [] with collection controls only.
func NewCollection(reps []map[string]interface{}, selfHref string, createSchema map[string]interface{}, filterFields []string) Envelope {
	items := make([]Envelope, 0, len(reps))
	for _, rep := range reps {
		items = append(items, NewItem(rep, itemHref(selfHref, rep["id"])))
	}

	env := Envelope{
		"items": items,
	}
	env.AddControl(ControlSelf, Control{Href: selfHref})
	env.AddControl(ControlCreate, Control{Href: selfHref, Method: "POST", Schema: createSchema})
	env.AddControl(ControlFilter, Control{
		Href:           filterTemplate(selfHref, filterFields),
		Fields:         filterFields,
		IsHrefTemplate: true,
	})
	return env
}

func itemHref(collectionHref string, id interface{}) string {
	if !strings.HasSuffix(collectionHref, "/") {
		collectionHref += "/"
	}
	return fmt.Sprintf("%s%v/", collectionHref, id)
}

func filterTemplate(collectionHref string, fields []string) string {
	return fmt.Sprintf("%s{?%s}", collectionHref, strings.Join(fields, ","))
}

// RootDocument is the discovery document served at the API root.
func RootDocument(basePath string) Envelope {
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return Envelope{
		ControlsKey: map[string]Control{
			"users":    {Href: basePath + "users/"},
			"postings": {Href: basePath + "postings/"},
			"gigs":     {Href: basePath + "gigs/"},
			"schema": {
				Href: basePath + "schema/",
			},
		},
	}
}
