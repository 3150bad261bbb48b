// Package posts selects the most recent blog posts from a set of content
// pages.
//
// Each page's frontmatter is read into a [Metadata] map. Pages whose "type"
// is "post" are kept, given a "url" from the page handle, sorted newest first
// by "date", and truncated to the requested limit:
//
//	pages, err := page.Collect("docs", page.CollectOptions{DirectoryURLs: true})
//	if err != nil {
//		return err
//	}
//	recent, err := posts.SelectRecent(pages, 6)
//
// Unreadable pages, malformed frontmatter and posts without a usable date are
// errors: broken content should block a build rather than silently vanish
// from the listing. Pages without a type are simply not posts.
package posts
