package params

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Values holds request parameters collected from the query string, a form
// body or a JSON body. The Telegram bot is inconsistent about where it puts
// parameters (JSON for creation, query params for cancellation, form data
// for status updates), so every source is accepted. JSON body fields win
// over form fields, which win over query parameters.
type Values map[string]string

// Parse collects parameters from all supported carriers of the request.
func Parse(r *http.Request) Values {
	v := Values{}

	for key, q := range r.URL.Query() {
		if len(q) > 0 {
			v[key] = q[0]
		}
	}

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		if r.Body == nil {
			break
		}
		var body map[string]interface{}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			break
		}
		for key, raw := range body {
			if s, ok := stringify(raw); ok {
				v[key] = s
			}
		}
	default:
		if err := r.ParseForm(); err == nil {
			for key, f := range r.PostForm {
				if len(f) > 0 {
					v[key] = f[0]
				}
			}
		}
	}

	return v
}

// Get returns the parameter value, or "" when absent.
func (v Values) Get(name string) string {
	return v[name]
}

// Has reports whether the parameter was supplied at all. An explicit empty
// string still counts as supplied.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Int parses the parameter as an integer. Returns false when absent or not
// numeric.
func (v Values) Int(name string) (int, bool) {
	s, ok := v[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func stringify(raw interface{}) (string, bool) {
	switch val := raw.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		// null means "not supplied" (the bot sends telegram_id: null)
		return "", false
	default:
		return "", false
	}
}
