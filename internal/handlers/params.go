package handlers

import "net/http"

// getParam returns a path parameter whether the router stored it as a
// ":name" query value (pat) or through the net/http PathValue API.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.PathValue(name)
}
