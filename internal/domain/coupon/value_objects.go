package coupon

import "errors"

var ErrUnknownCounter = errors.New("unknown counter")

// Content holds the admin-editable fields. Values are stored as given.
type Content struct {
	offer string
	code  string
	link  string
}

func NewContent(offer, code, link string) Content {
	return Content{offer: offer, code: code, link: link}
}

func (c Content) Offer() string { return c.offer }
func (c Content) Code() string  { return c.code }
func (c Content) Link() string  { return c.link }

type Counter string

const (
	CounterClick      Counter = "click"
	CounterThumbsUp   Counter = "thumbs_up"
	CounterThumbsDown Counter = "thumbs_down"
)

func (c Counter) String() string {
	return string(c)
}

func (c Counter) IsValid() bool {
	switch c {
	case CounterClick, CounterThumbsUp, CounterThumbsDown:
		return true
	default:
		return false
	}
}

func NewCounter(s string) (Counter, error) {
	counter := Counter(s)
	if !counter.IsValid() {
		return "", ErrUnknownCounter
	}
	return counter, nil
}

// Interactions is the public projection of a coupon's counters; Clicks mirrors used.
type Interactions struct {
	ThumbsUp   int64
	ThumbsDown int64
	Clicks     int64
}
