// gigctl is a small hypermedia client for the gigwork API. It never
// hardcodes resource paths: collection URIs come from the root
// document's @controls, item URIs from each item's self control.
//
// Usage:
//
//	gigctl [flags] <resource> list [field=value ...]
//	gigctl [flags] <resource> get <id>
//	gigctl [flags] <resource> create '<json>'
//	gigctl [flags] <resource> update <id> '<json>'
//	gigctl [flags] <resource> delete <id>
//	gigctl [flags] signup '<json>'
//
// Resources: users, postings, gigs. The signup command creates a user
// and stores the returned token for later requests.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"gigwork_backend/internal/client"
)

var (
	hostFlag      = flag.String("host", "http://localhost:4000", "API host, with protocol")
	tokenFileFlag = flag.String("token-file", "", "token file path (default ~/.gigctl_token)")
	jsonFlag      = flag.Bool("json", false, "print raw JSON instead of tables")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	c, err := client.New(*hostFlag, readToken())
	if err != nil {
		fail(err)
	}

	if args[0] == "signup" {
		if len(args) != 2 {
			usage()
			os.Exit(2)
		}
		if err := signup(c, args[1]); err != nil {
			fail(err)
		}
		return
	}

	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	resource, action := args[0], args[1]

	href, err := c.ResourceHref(resource)
	if err != nil {
		fail(err)
	}

	switch action {
	case "list":
		err = list(c, href, args[2:])
	case "get":
		err = withArg(args[2:], func(id string) error {
			doc, getErr := c.Get(href + id + "/")
			if getErr != nil {
				return getErr
			}
			return printItem(doc)
		})
	case "create":
		err = withArg(args[2:], func(body string) error {
			doc, postErr := c.Post(href, json.RawMessage(body))
			if postErr != nil {
				return postErr
			}
			return printItem(doc)
		})
	case "update":
		if len(args) != 4 {
			usage()
			os.Exit(2)
		}
		err = c.Put(href+args[2]+"/", json.RawMessage(args[3]))
	case "delete":
		err = withArg(args[2:], func(id string) error {
			return c.Delete(href + id + "/")
		})
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fail(err)
	}
}

// signup posts a new user and persists the issued token.
func signup(c *client.Client, body string) error {
	href, err := c.ResourceHref("users")
	if err != nil {
		return err
	}

	doc, err := c.Post(href, json.RawMessage(body))
	if err != nil {
		return err
	}

	token, _ := doc["token"].(string)
	if token == "" {
		return fmt.Errorf("signup response carries no token")
	}
	if err := writeToken(token); err != nil {
		return err
	}

	fmt.Println("token stored at", tokenPath())
	if user, ok := doc["user"].(map[string]interface{}); ok {
		return printItem(user)
	}
	return nil
}

// list fetches a collection, passing field=value pairs as filter query
// parameters. Unknown fields are ignored server-side.
func list(c *client.Client, href string, filters []string) error {
	query := url.Values{}
	for _, pair := range filters {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("bad filter %q: want field=value", pair)
		}
		query.Set(field, value)
	}

	uri := href
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	doc, err := c.Get(uri)
	if err != nil {
		return err
	}

	if *jsonFlag {
		return printJSON(doc)
	}

	items, _ := doc["items"].([]interface{})
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		fmt.Fprintln(tw, itemRow(item))
	}
	return tw.Flush()
}

func printItem(doc map[string]interface{}) error {
	if *jsonFlag {
		return printJSON(doc)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		if strings.HasPrefix(k, "@") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, renderValue(doc[k]))
	}
	return tw.Flush()
}

func printJSON(doc map[string]interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// itemRow picks the columns worth showing per resource shape.
func itemRow(item map[string]interface{}) string {
	cols := []string{renderValue(item["id"])}
	for _, k := range []string{"title", "first_name", "last_name", "email", "status", "price", "expires_at", "end_date"} {
		if v, ok := item[k]; ok {
			cols = append(cols, renderValue(v))
		}
	}
	return strings.Join(cols, "\t")
}

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case map[string]interface{}:
		if id, ok := val["id"].(string); ok {
			return id
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func withArg(args []string, fn func(string) error) error {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	return fn(args[0])
}

func tokenPath() string {
	if *tokenFileFlag != "" {
		return *tokenFileFlag
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gigctl_token"
	}
	return filepath.Join(home, ".gigctl_token")
}

func readToken() string {
	raw, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func writeToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token+"\n"), 0o600)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  gigctl [flags] signup '<json>'
  gigctl [flags] <resource> list [field=value ...]
  gigctl [flags] <resource> get <id>
  gigctl [flags] <resource> create '<json>'
  gigctl [flags] <resource> update <id> '<json>'
  gigctl [flags] <resource> delete <id>

resources: users, postings, gigs

flags:
`)
	flag.PrintDefaults()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "gigctl:", err)
	os.Exit(1)
}
