package markup

import (
	"fmt"
	"strings"
)

// Issue describes a markup construct that breaks an output contract.
type Issue struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("<%s>: %s", i.Tag, i.Message)
}

var executableTags = map[string]struct{}{
	"script": {},
	"iframe": {},
	"object": {},
	"embed":  {},
	"form":   {},
	"input":  {},
	"button": {},
}

// CheckScriptFree reports executable content: script-capable elements,
// inline event handlers and javascript: URLs.
func CheckScriptFree(root *Node) []Issue {
	var issues []Issue
	root.Walk(func(n *Node) bool {
		if n.IsText() {
			return true
		}
		if _, bad := executableTags[n.Tag]; bad {
			issues = append(issues, Issue{Tag: n.Tag, Message: "executable element"})
		}
		for _, attr := range n.Attrs {
			if strings.HasPrefix(attr.Name, "on") {
				issues = append(issues, Issue{Tag: n.Tag, Message: "event handler attribute " + attr.Name})
			}
			if attr.Name == "href" || attr.Name == "src" {
				value := strings.ToLower(strings.TrimSpace(attr.Value))
				if strings.HasPrefix(value, "javascript:") || strings.HasPrefix(value, "vbscript:") {
					issues = append(issues, Issue{Tag: n.Tag, Message: "script URL in " + attr.Name})
				}
			}
		}
		return true
	})
	return issues
}

var emailUnsafeTags = map[string]struct{}{
	"style": {},
	"link":  {},
	"svg":   {},
}

// CheckEmailSafe reports constructs that restrictive email clients drop:
// flexbox or grid display, positioned elements, stylesheet elements, plus
// everything CheckScriptFree rejects.
func CheckEmailSafe(root *Node) []Issue {
	issues := CheckScriptFree(root)
	root.Walk(func(n *Node) bool {
		if n.IsText() {
			return true
		}
		if _, bad := emailUnsafeTags[n.Tag]; bad {
			issues = append(issues, Issue{Tag: n.Tag, Message: "element not supported by email clients"})
		}
		if display, ok := n.Style.Get("display"); ok {
			switch strings.ToLower(display) {
			case "flex", "inline-flex", "grid", "inline-grid":
				issues = append(issues, Issue{Tag: n.Tag, Message: "display:" + display + " is not email safe"})
			}
		}
		if _, ok := n.Style.Get("position"); ok {
			issues = append(issues, Issue{Tag: n.Tag, Message: "positioned element is not email safe"})
		}
		return true
	})
	return issues
}
