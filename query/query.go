// Package query chains the twitter filters into named, reusable queries and
// summarizes what each query matched.
package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/umairgosal/Software-Construction-lab-04/internal/config"
	"github.com/umairgosal/Software-Construction-lab-04/internal/logging"
	"github.com/umairgosal/Software-Construction-lab-04/twitter"
)

// Query selects posts by author, time window, and keywords. Each criterion
// is applied only when set. A nil Words skips the keyword filter, while a
// non-nil but empty Words matches nothing.
type Query struct {
	Name   string
	Author string
	Window *twitter.Timespan
	Words  []string
}

// Result is what a query matched.
type Result struct {
	Query     string
	Posts     []twitter.Post
	Span      *twitter.Timespan // nil when no post matched
	Mentioned twitter.Usernames
}

// Runner evaluates queries against a collection of posts.
type Runner struct {
	log logrus.FieldLogger
}

// NewRunner returns a Runner that logs each stage at debug level. A nil
// logger discards output.
func NewRunner(log logrus.FieldLogger) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{log: log}
}

// Run applies q to posts. posts is not modified.
func (r *Runner) Run(posts []twitter.Post, q Query) Result {
	log := r.log.WithField("query", q.Name)

	out := make([]twitter.Post, 0, len(posts))
	out = append(out, posts...)

	if q.Author != "" {
		out = r.stage(log, "written_by", out, func(in []twitter.Post) []twitter.Post {
			return twitter.WrittenBy(in, q.Author)
		})
	}
	if q.Window != nil {
		span := *q.Window
		out = r.stage(log, "in_timespan", out, func(in []twitter.Post) []twitter.Post {
			return twitter.InTimespan(in, span)
		})
	}
	if q.Words != nil {
		out = r.stage(log, "containing", out, func(in []twitter.Post) []twitter.Post {
			return twitter.Containing(in, q.Words)
		})
	}

	res := Result{
		Query:     q.Name,
		Posts:     out,
		Mentioned: twitter.MentionedUsers(out),
	}
	if span, ok := twitter.GetTimespan(out); ok {
		res.Span = &span
	}

	log.WithFields(logging.Fields{
		"matched":   len(out),
		"mentioned": res.Mentioned.Len(),
	}).Debug("query done")

	return res
}

// RunAll applies every query to the same posts, in order.
func (r *Runner) RunAll(posts []twitter.Post, queries []Query) []Result {
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		results = append(results, r.Run(posts, q))
	}
	return results
}

func (r *Runner) stage(log logrus.FieldLogger, name string, in []twitter.Post, apply func([]twitter.Post) []twitter.Post) []twitter.Post {
	out := apply(in)
	log.WithFields(logging.Fields{
		"stage": name,
		"in":    len(in),
		"out":   len(out),
	}).Debug("filter applied")
	return out
}

// FromProfile converts the queries of a loaded profile.
func FromProfile(p *config.Profile) ([]Query, error) {
	if p == nil {
		return nil, nil
	}

	queries := make([]Query, 0, len(p.Queries))
	for _, qc := range p.Queries {
		q := Query{
			Name:   strings.TrimSpace(qc.Name),
			Author: qc.Author,
			Words:  qc.Words,
		}
		if qc.Window != nil {
			span, err := qc.Window.Timespan()
			if err != nil {
				return nil, fmt.Errorf("query %s: window: %w", q.Name, err)
			}
			q.Window = &span
		}
		queries = append(queries, q)
	}
	return queries, nil
}
