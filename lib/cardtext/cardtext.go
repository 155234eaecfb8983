package cardtext

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrUnknownFormat      = errors.New("text does not match any known card format")
	ErrMissingName        = errors.New("missing card name")
	ErrPower              = errors.New("invalid minion power")
	ErrMissingDescription = errors.New("missing card description")
)

// CleanText strips newlines, tabs and carriage returns, removes the
// " FAQ" suffix the wiki appends to card paragraphs and trims the result.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, "\t", "")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, " FAQ", "")
	return strings.TrimSpace(text)
}

type Kind int

const (
	KindUnknown Kind = iota
	KindMinion
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindMinion:
		return "minion"
	case KindAction:
		return "action"
	}
	return "unknown"
}

var powerStat = regexp.MustCompile(`(?i)power\s+\d`)

// Classify decides whether a card paragraph describes a minion or an
// action. Minion text carries a power stat and exactly three " - "
// separated segments, action text has at least one separator. Anything
// else is unknown.
func Classify(text string) (Kind, error) {
	text = CleanText(text)
	if powerStat.MatchString(text) && len(strings.Split(text, " - ")) == 3 {
		return KindMinion, nil
	}
	if strings.Contains(text, " - ") {
		return KindAction, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, preview(text))
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 50 {
		return text
	}
	return string(runes[:50]) + "..."
}

type Minion struct {
	Name        string
	Power       int
	Description string
}

type Action struct {
	Name        string
	Description string
}

func NewMinion(name string, power int, description string) (Minion, error) {
	if strings.TrimSpace(name) == "" {
		return Minion{}, ErrMissingName
	}
	if power < 0 {
		return Minion{}, fmt.Errorf("%w: power %d is negative", ErrPower, power)
	}
	return Minion{
		Name:        name,
		Power:       power,
		Description: description,
	}, nil
}

func NewAction(name, description string) (Action, error) {
	if strings.TrimSpace(name) == "" {
		return Action{}, ErrMissingName
	}
	return Action{
		Name:        name,
		Description: description,
	}, nil
}

// ParseMinion extracts a minion record from a labeled card paragraph.
// The label becomes the card name verbatim.
func ParseMinion(label, text string) (Minion, error) {
	cleaned := CleanText(text)
	segments := strings.Split(cleaned, " - ")
	if len(segments) != 3 {
		return Minion{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrUnknownFormat, len(segments))
	}

	lowered := strings.ToLower(cleaned)
	idx := strings.Index(lowered, "power")
	if idx < 0 {
		return Minion{}, fmt.Errorf("%w: no power stat", ErrPower)
	}
	raw := lowered[idx+len("power"):]
	if cut := strings.Index(raw, " - "); cut >= 0 {
		raw = raw[:cut]
	}
	raw = strings.TrimSpace(raw)
	power, err := strconv.Atoi(raw)
	if err != nil {
		return Minion{}, fmt.Errorf("%w: %q is not a number", ErrPower, raw)
	}

	description := CleanText(segments[2])
	if description == "" {
		return Minion{}, ErrMissingDescription
	}
	return NewMinion(label, power, description)
}

// ParseAction extracts an action record from a labeled card paragraph.
// The description is the second " - " separated segment, any further
// segments are ignored.
func ParseAction(label, text string) (Action, error) {
	cleaned := CleanText(text)
	segments := strings.Split(cleaned, " - ")
	if len(segments) < 2 {
		return Action{}, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrUnknownFormat, len(segments))
	}

	description := CleanText(segments[1])
	if description == "" {
		return Action{}, ErrMissingDescription
	}
	return NewAction(label, description)
}
