package svg

import (
	"fmt"
	"regexp"
	"strings"
)

// SetAttr sets name="value" in tag: if an attribute of that name is
// present anywhere in tag, every occurrence's value is replaced in
// place; if absent, it is inserted right after the first tag name.
func SetAttr(tag, name, value string) string {
	re := regexp.MustCompile(fmt.Sprintf(`(%s=")[^"]*(")`, regexp.QuoteMeta(name)))
	if re.MatchString(tag) {
		escaped := strings.ReplaceAll(value, "$", "$$")
		return re.ReplaceAllString(tag, "${1}"+escaped+"${2}")
	}

	insert := regexp.MustCompile(`^(<\w+)`)
	return insert.ReplaceAllString(tag, fmt.Sprintf(`$1 %s="%s"`, name, value))
}
