package twitter

import "time"

var (
	d1 = time.Date(2016, 2, 17, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2016, 2, 17, 11, 0, 0, 0, time.UTC)
	d3 = time.Date(2016, 2, 17, 12, 0, 0, 0, time.UTC)
	d4 = time.Date(2016, 2, 17, 13, 0, 0, 0, time.UTC)
	d0 = time.Date(2016, 2, 17, 9, 0, 0, 0, time.UTC)
)

var (
	tweet1 = Post{ID: 1, Author: "alyssa", Text: "is it reasonable to talk about rivest so much?", Timestamp: d1}
	tweet2 = Post{ID: 2, Author: "bbitdiddle", Text: "rivest talk in 30 minutes #hype", Timestamp: d2}
	tweet3 = Post{ID: 3, Author: "Alyssa", Text: "I love programming in Java!", Timestamp: d3}
	tweet4 = Post{ID: 4, Author: "carl", Text: "Java is versatile.", Timestamp: d4}
	tweet5 = Post{ID: 5, Author: "diana", Text: "@alyssa Have you seen the latest updates?", Timestamp: d1}
	tweet6 = Post{ID: 6, Author: "Eve", Text: "Check out my new blog at eve.blog.com", Timestamp: d2}
	tweet7 = Post{ID: 7, Author: "frank", Text: "JavaScript is different from Java.", Timestamp: d3}
	tweet8 = Post{ID: 8, Author: "Gina", Text: "JAVA is powerful!", Timestamp: d4}
	tweet9 = Post{ID: 9, Author: "helen", Text: "I enjoy hiking and outdoor activities.", Timestamp: d1}
)

func allTweets() []Post {
	return []Post{tweet1, tweet2, tweet3, tweet4, tweet5, tweet6, tweet7, tweet8, tweet9}
}

func ids(posts []Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func post(id int64, author, text string, ts time.Time) Post {
	return Post{ID: id, Author: author, Text: text, Timestamp: ts}
}
