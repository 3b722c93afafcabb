package markup

import "strings"

// Tag is the closed set of element kinds the converter understands.
// Anything unrecognized is TagOther.
type Tag int

const (
	TagOther Tag = iota
	TagH1
	TagH2
	TagH3
	TagParagraph
	TagStrong
	TagEmphasis
	TagUnorderedList
	TagOrderedList
	TagBreak
	TagLink
	TagCode
	TagPre
)

var tagsByName = map[string]Tag{
	"h1":     TagH1,
	"h2":     TagH2,
	"h3":     TagH3,
	"p":      TagParagraph,
	"strong": TagStrong,
	"b":      TagStrong,
	"em":     TagEmphasis,
	"i":      TagEmphasis,
	"ul":     TagUnorderedList,
	"ol":     TagOrderedList,
	"br":     TagBreak,
	"a":      TagLink,
	"code":   TagCode,
	"pre":    TagPre,
}

// ClassifyTag maps a tag name to its Tag, ignoring case.
func ClassifyTag(name string) Tag {
	if t, ok := tagsByName[strings.ToLower(name)]; ok {
		return t
	}
	return TagOther
}

func (t Tag) String() string {
	switch t {
	case TagH1:
		return "h1"
	case TagH2:
		return "h2"
	case TagH3:
		return "h3"
	case TagParagraph:
		return "p"
	case TagStrong:
		return "strong"
	case TagEmphasis:
		return "em"
	case TagUnorderedList:
		return "ul"
	case TagOrderedList:
		return "ol"
	case TagBreak:
		return "br"
	case TagLink:
		return "a"
	case TagCode:
		return "code"
	case TagPre:
		return "pre"
	default:
		return "other"
	}
}
