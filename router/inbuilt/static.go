package inbuilt

import (
	"fmt"
	"strings"

	"github.com/indigo-web/lite/content"
)

// Static sets the prefix of static files and the provider to fetch them from. The prefix
// must both start and end with a slash.
func (r *Router) Static(prefix string, provider content.Provider) *Router {
	r.mustBeMutable()

	if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") {
		panic(fmt.Sprintf("lite: static prefix must start and end with a slash: %q", prefix))
	}

	r.staticPrefix = prefix
	r.static = provider

	return r
}
