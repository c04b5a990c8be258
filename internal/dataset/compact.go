package dataset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cloudflare/critters/internal/output"
)

const allDay = "0-23"

// entry is the compact form of a critter, one document item per critter
// instead of one row per month and hour.
//
//	- name: Bitterling
//	  location: River
//	  shadowSize: "1"
//	  value: 900
//	  availability:
//	    - months: nov-mar
//	      hours: 0-23
type entry struct {
	Name         string   `yaml:"name"`
	ShadowSize   string   `yaml:"shadowSize"`
	Location     string   `yaml:"location"`
	Availability []window `yaml:"availability"`
	Value        Value    `yaml:"value"`
}

type window struct {
	Months string `yaml:"months"`
	Hours  string `yaml:"hours"`
}

type slots struct {
	months map[int]bool
	hours  map[int]bool
}

func (w window) parse() (s slots, err error) {
	s.months = map[int]bool{}
	s.hours = map[int]bool{}

	if w.Months == "" {
		return s, errors.New("months cannot be empty")
	}
	months, err := output.ParseMonthRanges(w.Months)
	if err != nil {
		return s, err
	}
	for _, m := range months {
		s.months[m] = true
	}

	if w.Hours == "" {
		w.Hours = allDay
	}
	hours, err := output.ExpandRanges(w.Hours)
	if err != nil {
		return s, err
	}
	for _, h := range hours {
		if err = validateHour(h); err != nil {
			return s, err
		}
		s.hours[h] = true
	}
	return s, nil
}

// rows expands an entry into the long format. In months covered by windows
// the hours of every such window are marked with IsTime, in other months
// IsTime is set for any hour the critter is ever out.
func (e entry) rows() ([]Row, error) {
	if e.Name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if e.Location == "" {
		return nil, fmt.Errorf("%s: location cannot be empty", e.Name)
	}
	if len(e.Availability) == 0 {
		return nil, fmt.Errorf("%s: availability cannot be empty", e.Name)
	}

	windows := make([]slots, 0, len(e.Availability))
	anyHour := map[int]bool{}
	for _, w := range e.Availability {
		s, err := w.parse()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		for h := range s.hours {
			anyHour[h] = true
		}
		windows = append(windows, s)
	}

	rows := make([]Row, 0, 12*24)
	for month := 1; month <= 12; month++ {
		hours := anyHour
		var isMonth bool
		for _, s := range windows {
			if !s.months[month] {
				continue
			}
			if !isMonth {
				hours = map[int]bool{}
				isMonth = true
			}
			for h := range s.hours {
				hours[h] = true
			}
		}
		for hour := 0; hour <= 23; hour++ {
			rows = append(rows, Row{
				Name:       e.Name,
				ShadowSize: e.ShadowSize,
				Location:   e.Location,
				Value:      e.Value,
				Month:      month,
				Hour:       hour,
				IsMonth:    isMonth,
				IsTime:     hours[hour],
			})
		}
	}
	return rows, nil
}

func decodeCompact(path string, content []byte) (rows []Row, err error) {
	var doc yaml.Node
	if err = yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	list := doc.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, &RowError{Path: path, Line: list.Line, Err: errors.New("expected a list of critters")}
	}

	for _, item := range list.Content {
		var e entry
		if err = item.Decode(&e); err != nil {
			return nil, &RowError{Path: path, Line: item.Line, Err: err}
		}
		er, err := e.rows()
		if err != nil {
			return nil, &RowError{Path: path, Line: item.Line, Err: err}
		}
		rows = append(rows, er...)
	}
	return rows, nil
}
