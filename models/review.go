package models

import "time"

// Review is an immutable note a user leaves on a movie. The rating is a copy
// of whatever rating was passed when the review was written; re-rating the
// movie later does not touch it.
type Review struct {
	author string
	text   string
	rating int
	date   time.Time
}

// NewReview stamps a review with the current time.
func NewReview(author, text string, rating int) Review {
	return Review{
		author: author,
		text:   text,
		rating: rating,
		date:   time.Now(),
	}
}

func (r Review) Author() string  { return r.author }
func (r Review) Text() string    { return r.text }
func (r Review) Rating() int     { return r.rating }
func (r Review) Date() time.Time { return r.date }

// FormattedDate renders the creation date for display, e.g. "March 9, 2025".
func (r Review) FormattedDate() string {
	return r.date.Format("January 2, 2006")
}

// Info returns the flattened form used for display and persistence.
func (r Review) Info() ReviewInfo {
	return ReviewInfo{
		Author: r.author,
		Text:   r.text,
		Rating: r.rating,
		Date:   r.date,
	}
}

func reviewFromInfo(info ReviewInfo) Review {
	return Review{
		author: info.Author,
		text:   info.Text,
		rating: info.Rating,
		date:   info.Date,
	}
}
