// Package fixtures declares Go types whose structure is inspected by the
// analyzer tests: embedded parents, conventional accessors and mutators,
// constructors and struct-tag defaults.
package fixtures

import (
	"errors"
	"time"
)

// Entity is embedded by every persisted type.
type Entity struct {
	ID        int64
	CreatedAt time.Time
	revision  int
}

// GetID returns the identifier.
func (e *Entity) GetID() int64 { return e.ID }

// Status is the publication state of an Article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Author writes articles.
type Author struct {
	Name  string
	Email string
}

// Analysis is one review of an Article.
type Analysis struct {
	Score float64
}

// Article is the richest fixture: it embeds Entity and uses every naming convention.
type Article struct {
	Entity

	Title  string
	Tags   []string
	Author *Author
	Score  float64 `default:"1.5"`
	Views  int     `default:"10"`
	Draft  bool    `default:"true"`
	Note   *string `default:"null"`
	Ratio  float32 `default:"not-a-number"`

	analyses []Analysis
	status   Status
	secret   string
	editor   *Author
}

// NewArticle creates an Article.
func NewArticle(title string, editor *Author) *Article {
	return &Article{Title: title, editor: editor, status: StatusDraft}
}

func (a *Article) GetTitle() string { return a.Title }

func (a *Article) SetTitle(title string) { a.Title = title }

func (a *Article) AddAnalysis(analysis Analysis) { a.analyses = append(a.analyses, analysis) }

func (a *Article) RemoveAnalysis(analysis Analysis) {
	for i := range a.analyses {
		if a.analyses[i] == analysis {
			a.analyses = append(a.analyses[:i], a.analyses[i+1:]...)
			return
		}
	}
}

func (a *Article) IsPublished() bool { return a.status == StatusPublished }

func (a *Article) HasAuthor() bool { return a.Author != nil }

func (a *Article) GetStatus() (Status, error) {
	if a.status == "" {
		return "", errors.New("status not set")
	}

	return a.status, nil
}

func (a *Article) SetTags(tags ...string) { a.Tags = tags }

func (a Article) GetSummary(maxLen int) string {
	if len(a.Title) <= maxLen {
		return a.Title
	}

	return a.Title[:maxLen]
}

func (a *Article) setSecret(secret string) { a.secret = secret }

// Draft is an Article that was never published. It has no constructor of its own.
type Draft struct {
	Article

	Title string
}

// Publishable is implemented by anything that can go live.
type Publishable interface {
	IsPublished() bool
	GetTitle() string
}

// Comment is only initializable through its constructor.
type Comment struct {
	Body string
}

// NewComment creates a Comment. The parameter is named after the field.
func NewComment(Body string) *Comment {
	return &Comment{Body: Body}
}
