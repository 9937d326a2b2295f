package doc

import (
	"strconv"
	"strings"
)

// Debug renders the structure of d, e.g.
//
//	group(nest(2, ["a", ",", softline, "b"]))
func Debug(d Doc) string {
	var sb strings.Builder
	writeDebug(&sb, d)
	return sb.String()
}

func writeDebug(sb *strings.Builder, d Doc) {
	switch x := d.(type) {
	case nilDoc:
		sb.WriteString("nil")
	case textDoc:
		sb.WriteString(strconv.Quote(string(x)))
	case lineDoc:
		switch x.kind {
		case lineHard:
			sb.WriteString("hardline")
		case lineOrSpace:
			sb.WriteString("line")
		case lineSoft:
			sb.WriteString("softline")
		}
	case concatDoc:
		sb.WriteByte('[')
		for i, p := range x.parts {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDebug(sb, p)
		}
		sb.WriteByte(']')
	case nestDoc:
		sb.WriteString("nest(")
		sb.WriteString(strconv.Itoa(x.indent))
		sb.WriteString(", ")
		writeDebug(sb, x.doc)
		sb.WriteByte(')')
	case *groupDoc:
		sb.WriteString("group(")
		writeDebug(sb, x.doc)
		sb.WriteByte(')')
	default:
		sb.WriteString("?")
	}
}
