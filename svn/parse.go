package svn

import (
	"encoding/xml"
	"html"
	"net/url"
	"strconv"
	"strings"
)

// decodeText resolves percent escapes and HTML character references in a
// plain-text field, each exactly once. A value that is not valid percent
// encoding is kept as-is.
func decodeText(s string) string {
	if dec, err := url.PathUnescape(s); err == nil {
		s = dec
	}
	return html.UnescapeString(s)
}

// decodeXMLText resolves percent escapes in a field that came through the
// XML decoder. Character references were already expanded by the decoder,
// so running html.UnescapeString again would eat literal "&amp;" data.
func decodeXMLText(s string) string {
	if dec, err := url.PathUnescape(s); err == nil {
		return dec
	}
	return s
}

// cleanRevision filters svn's placeholder revisions down to absence: "-1"
// and non-numeric text both mean svn had no real revision to report.
func cleanRevision(rev string) string {
	if rev == "" || rev == "-1" {
		return ""
	}
	if _, err := strconv.Atoi(rev); err != nil {
		return ""
	}
	return rev
}

// ParseInfo extracts one Info record from plain `svn info` output. Each
// line is split at its first colon; unrecognized keys are skipped. It
// returns nil when no known field was present at all.
func ParseInfo(raw string) *Info {
	info := &Info{}
	found := false
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		dst := infoField(info, key)
		if dst == nil {
			continue
		}
		*dst = decodeText(value)
		found = true
	}
	if !found {
		return nil
	}
	return info
}

func infoField(info *Info, key string) *string {
	switch key {
	case "Path":
		return &info.Path
	case "URL":
		return &info.URL
	case "Relative URL":
		return &info.RelativeURL
	case "Repository Root":
		return &info.RepositoryRoot
	case "Repository UUID":
		return &info.RepositoryUUID
	case "Revision":
		return &info.Revision
	case "Node Kind":
		return &info.NodeKind
	case "Schedule":
		return &info.Schedule
	case "Last Changed Author":
		return &info.LastChangedAuthor
	case "Last Changed Rev":
		return &info.LastChangedRev
	case "Last Changed Date":
		return &info.LastChangedDate
	}
	return nil
}

type statusDoc struct {
	XMLName     xml.Name       `xml:"status"`
	Targets     []statusTarget `xml:"target"`
	Changelists []statusTarget `xml:"changelist"`
}

type statusTarget struct {
	Entries []statusEntry `xml:"entry"`
}

type statusEntry struct {
	Path        string    `xml:"path,attr"`
	WCStatus    *wcStatus `xml:"wc-status"`
	ReposStatus *wcStatus `xml:"repos-status"`
}

type wcStatus struct {
	Item     string      `xml:"item,attr"`
	Revision string      `xml:"revision,attr"`
	Commit   *commitInfo `xml:"commit"`
}

type commitInfo struct {
	Revision string `xml:"revision,attr"`
	Author   string `xml:"author"`
	Date     string `xml:"date"`
}

// statusCodes maps svn's XML item names onto the single-character codes of
// its plain output.
var statusCodes = map[string]string{
	"added":       "A",
	"modified":    "M",
	"deleted":     "D",
	"replaced":    "R",
	"conflicted":  "C",
	"obstructed":  "~",
	"ignored":     "I",
	"not-tracked": "?",
	"missing":     "!",
	"incomplete":  "!",
	"external":    "X",
	"unversioned": "?",
}

func statusCode(item string) string {
	if code, ok := statusCodes[item]; ok {
		return code
	}
	return " "
}

// ParseStatus reads `svn status --xml` output. Entries are collected from
// every <target> and <changelist> group. Output that does not parse as a
// status document yields nil rather than an error.
func ParseStatus(raw string) []StatusItem {
	var doc statusDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}

	groups := make([]statusTarget, 0, len(doc.Targets)+len(doc.Changelists))
	groups = append(groups, doc.Targets...)
	groups = append(groups, doc.Changelists...)

	var items []StatusItem
	for _, grp := range groups {
		for _, entry := range grp.Entries {
			item := StatusItem{
				Path:   decodeXMLText(entry.Path),
				Status: " ",
			}
			if wc := entry.WCStatus; wc != nil {
				item.Status = statusCode(wc.Item)
				item.Revision = cleanRevision(wc.Revision)
				if wc.Commit != nil {
					item.LastChangedRev = cleanRevision(wc.Commit.Revision)
					item.LastChangedAuthor = decodeXMLText(wc.Commit.Author)
					item.LastChangedDate = decodeXMLText(wc.Commit.Date)
				}
			}
			// Remote-only entries carry their commit under repos-status.
			if item.LastChangedRev == "" && entry.ReposStatus != nil && entry.ReposStatus.Commit != nil {
				commit := entry.ReposStatus.Commit
				item.LastChangedRev = cleanRevision(commit.Revision)
				if item.LastChangedAuthor == "" {
					item.LastChangedAuthor = decodeXMLText(commit.Author)
				}
				if item.LastChangedDate == "" {
					item.LastChangedDate = decodeXMLText(commit.Date)
				}
			}
			items = append(items, item)
		}
	}
	return items
}

type logDoc struct {
	XMLName xml.Name      `xml:"log"`
	Entries []logEntryXML `xml:"logentry"`
}

type logEntryXML struct {
	Revision string       `xml:"revision,attr"`
	Author   string       `xml:"author"`
	Date     string       `xml:"date"`
	Msg      string       `xml:"msg"`
	Paths    []logPathXML `xml:"paths>path"`
}

type logPathXML struct {
	Action string `xml:"action,attr"`
	Kind   string `xml:"kind,attr"`
	Value  string `xml:",chardata"`
}

// ParseLog reads `svn log --xml` output into entries ordered as svn
// printed them, newest first.
func ParseLog(raw string) []LogEntry {
	var doc logDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}

	entries := make([]LogEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		entry := LogEntry{
			Revision: cleanRevision(e.Revision),
			Author:   decodeXMLText(e.Author),
			Date:     decodeXMLText(e.Date),
			Message:  decodeXMLText(e.Msg),
		}
		for _, p := range e.Paths {
			entry.Paths = append(entry.Paths, PathChange{
				Action: p.Action,
				Kind:   p.Kind,
				Path:   decodeXMLText(p.Value),
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

type listsDoc struct {
	XMLName xml.Name  `xml:"lists"`
	Lists   []listXML `xml:"list"`
	// Some svn builds emit entries directly under <lists>.
	Entries []listEntryXML `xml:"entry"`
}

type listXML struct {
	Entries []listEntryXML `xml:"entry"`
}

type listEntryXML struct {
	Name string `xml:"name"`
}

// ParseList reads `svn list --xml` output and returns the entry names in
// document order.
func ParseList(raw string) []string {
	var doc listsDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}

	var names []string
	for _, list := range doc.Lists {
		for _, entry := range list.Entries {
			names = append(names, decodeXMLText(entry.Name))
		}
	}
	for _, entry := range doc.Entries {
		names = append(names, decodeXMLText(entry.Name))
	}
	return names
}

// ParsePropNames reads plain `svn proplist` output: header lines introduce
// a target, indented lines are property names.
func ParsePropNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			continue
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
