package quiz

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	quizzes []*Quiz
	byID    map[string]*Quiz
	byBook  map[string]*Quiz
}

type catalogFile struct {
	Quizzes []*Quiz `yaml:"quizzes"`
}

func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalog)
}

// LoadCatalog parses a YAML quiz catalog. Quiz content is checked later by
// Validate so that one bad quiz does not hide the others.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse quiz catalog: %w", err)
	}

	c := &Catalog{
		byID:   make(map[string]*Quiz, len(file.Quizzes)),
		byBook: make(map[string]*Quiz, len(file.Quizzes)),
	}
	for _, q := range file.Quizzes {
		if q == nil || q.ID == "" {
			return nil, fmt.Errorf("parse quiz catalog: quiz without id")
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("parse quiz catalog: duplicate quiz id %q", q.ID)
		}
		c.quizzes = append(c.quizzes, q)
		c.byID[q.ID] = q
		if q.BookID != "" {
			c.byBook[q.BookID] = q
		}
	}
	return c, nil
}

func (c *Catalog) All() []*Quiz {
	out := make([]*Quiz, len(c.quizzes))
	copy(out, c.quizzes)
	return out
}

func (c *Catalog) ByID(id string) (*Quiz, bool) {
	q, ok := c.byID[id]
	return q, ok
}

func (c *Catalog) ByBook(bookID string) (*Quiz, bool) {
	q, ok := c.byBook[bookID]
	return q, ok
}

// Validate returns the validation error of every quiz that fails, keyed by quiz id.
func (c *Catalog) Validate() map[string]error {
	problems := make(map[string]error)
	for _, q := range c.quizzes {
		if err := q.Validate(); err != nil {
			problems[q.ID] = err
		}
	}
	return problems
}
