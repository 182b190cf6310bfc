package workspace

import "regexp"

// tagRule maps an intent keyword pattern to a tag.
type tagRule struct {
	re  *regexp.Regexp
	tag string
}

var tagRules = []tagRule{
	{regexp.MustCompile(`work|meeting|office|project|deadline`), "work"},
	{regexp.MustCompile(`crypto|stock|invest|portfolio|finance|budget`), "finance"},
	{regexp.MustCompile(`music|video|movie|podcast|game|watch|listen`), "entertainment"},
	{regexp.MustCompile(`timer|pomodoro|focus|productiv|todo|task`), "productivity"},
	{regexp.MustCompile(`mail|chat|message|slack|discord`), "communication"},
	{regexp.MustCompile(`trip|travel|flight|hotel|vacation`), "travel"},
	{regexp.MustCompile(`news|headline|article|read`), "reading"},
	{regexp.MustCompile(`weather|forecast`), "weather"},
	{regexp.MustCompile(`code|debug|github|program|deploy`), "development"},
	{regexp.MustCompile(`learn|study|course|tutorial`), "learning"},
	{regexp.MustCompile(`health|workout|fitness|recipe|meal`), "health"},
}

// deriveTags applies the fixed keyword rules against the normalized intent.
// An intent matching none of them is tagged "general", never tagless.
func deriveTags(normalizedIntent string) []string {
	var tags []string
	for _, rule := range tagRules {
		if rule.re.MatchString(normalizedIntent) {
			tags = append(tags, rule.tag)
		}
	}
	if len(tags) == 0 {
		tags = []string{"general"}
	}
	return tags
}
