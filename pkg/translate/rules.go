package translate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultRules returns the loader's built-in translations.
func DefaultRules() []Rule {
	return []Rule{
		{"Hello", "Hewwo"},
		{"LED", "UwU"},
		{"Button", "Bwuton"},
		{"Sensor", "Swensr"},
		{"Temperature", "Tempwwature"},
		{"Voltage", "Wowtage"},
		{"Error", "Euwou"},
		{"Press", "Pwess"},
		{"Release", "Welease"},
		{"Motor", "Wotor"},
		{"World", "Wurld"},
		{"Loop", "Woop"},
		{"Start", "Stawt"},
		{"Stop", "Stwp"},
		{"Connected", "Cownected"},
		{"Setup", "Sewup"},
	}
}

// ParseRules reads one "before after" pair per line.
// Text after '#' and blank lines are ignored.
func ParseRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 2:
			rules = append(rules, Rule{Before: fields[0], After: fields[1]})
		default:
			return nil, fmt.Errorf("%w: line %d: want \"before after\", got %d fields", ErrRuleSyntax, line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return rules, nil
}
