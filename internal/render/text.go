package render

import (
	"fmt"
	"io"
	"strings"
)

// WriteText 以纯文本输出节点序列，供命令行预览
func WriteText(w io.Writer, nodes []Node) error {
	for i, n := range nodes {
		var err error
		switch v := n.(type) {
		case HeadingNode:
			_, err = fmt.Fprintf(w, "%s %s\n\n", strings.Repeat("#", v.Level), v.Text)
		case ParagraphNode:
			_, err = fmt.Fprintf(w, "%s\n\n", v.Text)
		case CodeNode:
			_, err = fmt.Fprintf(w, "```%s\n%s\n```\n", v.Language, strings.TrimRight(v.Code, "\n"))
			if err == nil && v.Explanation != "" {
				_, err = fmt.Fprintf(w, "  %s\n", v.Explanation)
			}
			if err == nil && v.OutputVisible {
				_, err = fmt.Fprintf(w, "Output:\n%s\n", v.Output)
			}
			if err == nil {
				_, err = fmt.Fprintln(w)
			}
		case CalloutNode:
			_, err = fmt.Fprintf(w, "%s %s: %s\n\n", v.Icon, v.Label, v.Text)
		case VisualNode:
			_, err = fmt.Fprintf(w, "%s %s: %s\n  Alt text: %s\n\n", v.Icon, v.Label, v.Description, v.Alt)
		case ListNode:
			for _, item := range v.Items {
				if _, err = fmt.Fprintf(w, "  - %s\n", item); err != nil {
					break
				}
			}
			if err == nil {
				_, err = fmt.Fprintln(w)
			}
		case nil:
			_, err = fmt.Fprintf(w, "<section %d skipped>\n\n", i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
