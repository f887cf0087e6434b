package document

import (
	"strings"

	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

var methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

func operation(p *v3.PathItem, method string) *v3.Operation {
	switch strings.ToLower(method) {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	}
	return nil
}

// Target selects where a comment list is stored: the info object when Path
// is empty, otherwise the operation at Path and Method.
type Target struct {
	Path   string
	Method string
}

var InfoTarget = Target{}

func (t Target) IsInfo() bool {
	return t.Path == ""
}

func (t Target) String() string {
	if t.IsInfo() {
		return "info"
	}
	return strings.ToUpper(t.Method) + " " + t.Path
}
